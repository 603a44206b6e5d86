package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tamapet/config"
	"tamapet/internal/database"
	"tamapet/pkg/emotion"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testRouter(t *testing.T, predictor emotion.Predictor) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg := &config.Config{
		Env:               "test",
		JWTSecret:         "test-secret",
		JWTExpiry:         time.Hour,
		JWTIssuer:         "tamapet",
		BiasTransferRate:  0.3,
		RunawayReturnCost: 500,
		BirthdayReward:    300,
		MinigameScoreRate: 1,
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
	}
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}

	return Setup(cfg, Build(cfg, db, loc, predictor))
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestFullGameFlow(t *testing.T) {
	r := testRouter(t, &emotion.Stub{Delta: 15.5})

	// A fresh session starts with no money.
	w := doJSON(t, r, http.MethodPost, "/api/v1/users/start", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("start: %d %s", w.Code, w.Body.String())
	}
	start := decode(t, w)
	token, _ := start["token"].(string)
	if token == "" {
		t.Fatal("no session token in response")
	}
	if start["money"].(float64) != 0 {
		t.Errorf("starting money = %v, want 0", start["money"])
	}

	// Name the animals.
	w = doJSON(t, r, http.MethodPost, "/api/v1/pets/nickname", token, map[string]any{
		"animals": []map[string]any{
			{"animal_id": 1, "name": "Pochi"},
			{"animal_id": 2, "name": "Piyo"},
			{"animal_id": 3, "name": "Gua"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("nickname: %d %s", w.Code, w.Body.String())
	}

	// Check in to earn enough coins for the first care.
	w = doJSON(t, r, http.MethodPost, "/api/v1/events/attendance", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("attendance: %d %s", w.Code, w.Body.String())
	}

	// Care with the Snack (30 coins).
	w = doJSON(t, r, http.MethodPost, "/api/v1/cares/action", token, map[string]any{
		"animal_id": 1,
		"action_id": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("care: %d %s", w.Code, w.Body.String())
	}
	care := decode(t, w)
	if care["previous_emotion"].(float64) != 50 || care["new_emotion"].(float64) != 66 {
		t.Errorf("care = %v, want 50 -> 66", care)
	}

	// Day 1 attendance pays 100; the snack cost 30.
	w = doJSON(t, r, http.MethodGet, "/api/v1/users/me/balance", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("balance: %d %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["money"].(float64); got != 70 {
		t.Errorf("balance = %v, want 70", got)
	}

	// The animal view reflects the new emotion.
	w = doJSON(t, r, http.MethodGet, "/api/v1/pets/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get animal: %d %s", w.Code, w.Body.String())
	}
	view := decode(t, w)
	if view["species"] != "shiba" {
		t.Errorf("species = %v, want shiba", view["species"])
	}

	// Both money movements are on the ledger.
	w = doJSON(t, r, http.MethodGet, "/api/v1/users/me/transactions", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("transactions: %d %s", w.Code, w.Body.String())
	}
	txs, _ := decode(t, w)["transactions"].([]any)
	if len(txs) != 2 {
		t.Errorf("transactions = %d, want 2", len(txs))
	}
}

func TestRoutesRequireSession(t *testing.T) {
	r := testRouter(t, &emotion.Stub{})

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users/me/balance"},
		{http.MethodPost, "/api/v1/pets/nickname"},
		{http.MethodPost, "/api/v1/cares/action"},
		{http.MethodPost, "/api/v1/events/attendance"},
		{http.MethodPost, "/api/v1/minigames/1/start"},
		{http.MethodGet, "/api/v1/ending/summary"},
	}
	for _, p := range paths {
		w := doJSON(t, r, p.method, p.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s = %d, want 401", p.method, p.path, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/me/balance", "garbage-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token = %d, want 401", w.Code)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	r := testRouter(t, &emotion.Stub{Delta: 5})

	w := doJSON(t, r, http.MethodPost, "/api/v1/users/start", "", nil)
	token, _ := decode(t, w)["token"].(string)

	names := map[string]any{
		"animals": []map[string]any{
			{"animal_id": 1, "name": "Pochi"},
			{"animal_id": 2, "name": "Piyo"},
			{"animal_id": 3, "name": "Gua"},
		},
	}
	if w = doJSON(t, r, http.MethodPost, "/api/v1/pets/nickname", token, names); w.Code != http.StatusOK {
		t.Fatalf("nickname: %d %s", w.Code, w.Body.String())
	}

	// Naming twice conflicts.
	if w = doJSON(t, r, http.MethodPost, "/api/v1/pets/nickname", token, names); w.Code != http.StatusConflict {
		t.Errorf("duplicate nickname = %d, want 409", w.Code)
	}

	// A broke user cannot afford the snack.
	w = doJSON(t, r, http.MethodPost, "/api/v1/cares/action", token, map[string]any{
		"animal_id": 1, "action_id": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("insufficient funds = %d, want 400", w.Code)
	}

	// Returning an animal that never ran away is a state error.
	if w = doJSON(t, r, http.MethodPost, "/api/v1/pets/1/return", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("return = %d, want 400", w.Code)
	}

	// Unknown animal.
	if w = doJSON(t, r, http.MethodGet, "/api/v1/pets/9", token, nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown animal = %d, want 404", w.Code)
	}
}

func TestPredictorOutageReturns503(t *testing.T) {
	r := testRouter(t, &emotion.Stub{Err: fmt.Errorf("connection refused")})

	w := doJSON(t, r, http.MethodPost, "/api/v1/users/start", "", nil)
	token, _ := decode(t, w)["token"].(string)

	names := map[string]any{
		"animals": []map[string]any{
			{"animal_id": 1, "name": "Pochi"},
			{"animal_id": 2, "name": "Piyo"},
			{"animal_id": 3, "name": "Gua"},
		},
	}
	if w = doJSON(t, r, http.MethodPost, "/api/v1/pets/nickname", token, names); w.Code != http.StatusOK {
		t.Fatalf("nickname: %d %s", w.Code, w.Body.String())
	}
	if w = doJSON(t, r, http.MethodPost, "/api/v1/events/attendance", token, nil); w.Code != http.StatusOK {
		t.Fatalf("attendance: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/cares/action", token, map[string]any{
		"animal_id": 1, "action_id": 1,
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("care during outage = %d, want 503", w.Code)
	}

	// The charge rolled back with the rest of the transaction.
	w = doJSON(t, r, http.MethodGet, "/api/v1/users/me/balance", token, nil)
	if got := decode(t, w)["money"].(float64); got != 100 {
		t.Errorf("balance = %v, want the untouched 100", got)
	}
}
