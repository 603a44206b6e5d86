package service

import (
	"context"
	"testing"

	"tamapet/internal/domain"

	"github.com/google/uuid"
)

func TestUserStart(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users, env.txs)

	u, err := svc.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if u.UserID == uuid.Nil {
		t.Error("user id is nil")
	}
	if u.Money != 0 {
		t.Errorf("money = %d, want 0", u.Money)
	}

	got, err := svc.Get(context.Background(), u.UserID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != u.UserID {
		t.Errorf("got user %s, want %s", got.UserID, u.UserID)
	}
}

func TestUserGetUnknown(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users, env.txs)

	if _, err := svc.Get(context.Background(), uuid.New()); domain.KindOf(err) != domain.KindNotFound {
		t.Errorf("got %v, want not found", err)
	}
}

func TestUserTransactions(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, 0)
	svc := NewUserService(env.users, env.txs)

	for i := 0; i < 5; i++ {
		if _, err := env.ledger.Apply(env.db, user, 100, domain.SourceAttendance); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}

	list, err := svc.Transactions(context.Background(), user, 3)
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("transactions = %d, want limited to 3", len(list))
	}

	// Out-of-range limits fall back to the default.
	list, err = svc.Transactions(context.Background(), user, 0)
	if err != nil {
		t.Fatalf("Transactions default limit: %v", err)
	}
	if len(list) != 5 {
		t.Errorf("transactions = %d, want all 5", len(list))
	}

	if _, err := svc.Transactions(context.Background(), uuid.New(), 10); domain.KindOf(err) != domain.KindNotFound {
		t.Errorf("unknown user: got %v, want not found", err)
	}
}
