package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"tamapet/internal/database"
	"tamapet/internal/domain"
	"tamapet/internal/models"
	"tamapet/internal/repository"
	"tamapet/pkg/emotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires every repository against an in-memory database seeded with
// the static catalogs.
type testEnv struct {
	db  *gorm.DB
	loc *time.Location

	users      *repository.UserRepository
	animals    *repository.AnimalRepository
	actions    *repository.ActionRepository
	logs       *repository.CareLogRepository
	txs        *repository.TransactionRepository
	attendance *repository.AttendanceRepository
	birthdays  *repository.BirthdayRepository
	games      *repository.MinigameRepository

	ledger *LedgerService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// A named shared-cache memory database so the connection pool sees one
	// database instead of one per connection.
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

	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}

	users := repository.NewUserRepository(db)
	txs := repository.NewTransactionRepository(db)
	return &testEnv{
		db:         db,
		loc:        loc,
		users:      users,
		animals:    repository.NewAnimalRepository(db),
		actions:    repository.NewActionRepository(db),
		logs:       repository.NewCareLogRepository(db),
		txs:        repository.NewTransactionRepository(db),
		attendance: repository.NewAttendanceRepository(db),
		birthdays:  repository.NewBirthdayRepository(db),
		games:      repository.NewMinigameRepository(db),
		ledger:     NewLedgerService(users, txs),
	}
}

func (e *testEnv) careService(predictor emotion.Predictor) *CareService {
	return NewCareService(e.db, e.loc, 0.3, e.animals, e.actions, e.logs, e.ledger, predictor)
}

func (e *testEnv) petService() *PetService {
	return NewPetService(e.db, e.animals, e.actions, e.users, e.ledger, 500)
}

// newUser inserts a user with the given balance.
func (e *testEnv) newUser(t *testing.T, money int64) uuid.UUID {
	t.Helper()
	u := &models.User{UserID: uuid.New(), Money: money, CreatedAt: time.Now()}
	if err := e.users.Create(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.UserID
}

// newAnimals inserts the three fixed-slot animals in their starting state.
func (e *testEnv) newAnimals(t *testing.T, userID uuid.UUID) {
	t.Helper()
	names := map[int]string{1: "Pochi", 2: "Piyo", 3: "Gua"}
	for slot := 1; slot <= 3; slot++ {
		a := &models.Animal{
			UserID:          userID,
			Slot:            slot,
			Name:            names[slot],
			EvolutionStage:  1,
			CurrentEmotion:  decimal.NewFromInt(50),
			Birthday:        domain.BirthdayForSlot[slot],
			UserPatternBias: decimal.NewFromFloat(0.3333),
		}
		if err := e.animals.Create(a); err != nil {
			t.Fatalf("create animal %d: %v", slot, err)
		}
	}
}

func (e *testEnv) animal(t *testing.T, userID uuid.UUID, slot int) *models.Animal {
	t.Helper()
	a, err := e.animals.GetBySlot(userID, slot)
	if err != nil {
		t.Fatalf("get animal %d: %v", slot, err)
	}
	return a
}

func (e *testEnv) balance(t *testing.T, userID uuid.UUID) int64 {
	t.Helper()
	u, err := e.users.GetByID(userID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	return u.Money
}

func (e *testEnv) setEmotion(t *testing.T, userID uuid.UUID, slot int, emotion int64) {
	t.Helper()
	err := e.db.Model(&models.Animal{}).
		Where("user_id = ? AND slot = ?", userID, slot).
		Update("current_emotion", decimal.NewFromInt(emotion)).Error
	if err != nil {
		t.Fatalf("set emotion: %v", err)
	}
}

func TestDayStart(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}

	at := time.Date(2026, time.March, 15, 23, 59, 59, 0, loc)
	got := dayStart(at, loc)
	want := time.Date(2026, time.March, 15, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("dayStart = %v, want %v", got, want)
	}

	// A UTC instant on the far side of the local midnight belongs to the
	// next local day.
	utc := time.Date(2026, time.March, 15, 16, 0, 0, 0, time.UTC) // 01:00 on the 16th in Seoul
	got = dayStart(utc, loc)
	want = time.Date(2026, time.March, 16, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("dayStart(utc) = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}

	cases := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2026, time.March, 15, 9, 0, 0, 0, loc),
			b:    time.Date(2026, time.March, 15, 23, 0, 0, 0, loc),
			want: 0,
		},
		{
			name: "just past midnight",
			a:    time.Date(2026, time.March, 15, 23, 59, 0, 0, loc),
			b:    time.Date(2026, time.March, 16, 0, 1, 0, 0, loc),
			want: 1,
		},
		{
			name: "three days",
			a:    time.Date(2026, time.March, 12, 12, 0, 0, 0, loc),
			b:    time.Date(2026, time.March, 15, 12, 0, 0, 0, loc),
			want: 3,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := daysBetween(tc.a, tc.b, loc); got != tc.want {
				t.Errorf("daysBetween = %d, want %d", got, tc.want)
			}
		})
	}
}
