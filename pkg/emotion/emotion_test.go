package emotion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFeatureVectorWireFormat(t *testing.T) {
	f := FeatureVector{
		CurrentEmotion:    50,
		ActionCount:       2,
		UserPatternBias:   0.3333,
		DaysSinceLastCare: 3,
	}
	f.SetSpecies("shiba")
	f.SetAction("feed", 1)

	body, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(got) != 16 {
		t.Errorf("wire fields = %d, want 16", len(got))
	}
	for key, want := range map[string]float64{
		"current_emotion":      50,
		"action_count":         2,
		"user_pattern_bias":    0.3333,
		"days_since_last_care": 3,
		"animal_type_shiba":    1,
		"animal_type_chick":    0,
		"animal_type_duck":     0,
		"action_feed1":         1,
		"action_feed2":         0,
		"action_gift3":         0,
	} {
		if got[key] != want {
			t.Errorf("%s = %v, want %v", key, got[key], want)
		}
	}
}

func TestSetSpeciesIsExclusive(t *testing.T) {
	var f FeatureVector
	f.SetSpecies("chick")
	f.SetSpecies("duck")

	if f.AnimalTypeChick != 0 || f.AnimalTypeDuck != 1 || f.AnimalTypeShiba != 0 {
		t.Errorf("flags = %d/%d/%d, want only duck set", f.AnimalTypeChick, f.AnimalTypeDuck, f.AnimalTypeShiba)
	}
}

func TestClientPredict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Errorf("path = %s, want /predict", r.URL.Path)
		}
		var f FeatureVector
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if f.CurrentEmotion != 50 || f.AnimalTypeShiba != 1 {
			t.Errorf("request vector = %+v", f)
		}
		json.NewEncoder(w).Encode(map[string]float64{"predicted_emotion_delta": 15.5})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	f := FeatureVector{CurrentEmotion: 50}
	f.SetSpecies("shiba")

	delta, err := c.Predict(context.Background(), f)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if delta != 15.5 {
		t.Errorf("delta = %v, want 15.5", delta)
	}
}

func TestClientPredictServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if _, err := c.Predict(context.Background(), FeatureVector{}); err == nil {
		t.Fatal("expected an error on HTTP 500")
	}
}

func TestStubScript(t *testing.T) {
	s := &Stub{Delta: 1, Script: []float64{5, -2}}

	for i, want := range []float64{5, -2, 1, 1} {
		got, err := s.Predict(context.Background(), FeatureVector{})
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if got != want {
			t.Errorf("call %d = %v, want %v", i, got, want)
		}
	}
}
