package service

import (
	"context"
	"testing"
	"time"

	"tamapet/internal/domain"
)

func newBirthdayService(env *testEnv) *BirthdayService {
	return NewBirthdayService(env.db, env.loc, env.animals, env.birthdays, env.ledger, 300)
}

func TestBirthdayReward(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, 0)
	env.newAnimals(t, user)
	svc := newBirthdayService(env)

	// The shiba's birthday is January 4; the year is ignored.
	birthday := time.Date(2026, time.January, 4, 10, 0, 0, 0, env.loc)

	res, err := svc.GiveReward(context.Background(), user, 1, birthday)
	if err != nil {
		t.Fatalf("GiveReward: %v", err)
	}
	if res.Amount != 300 || res.Balance != 300 {
		t.Errorf("result = %+v, want amount 300 balance 300", res)
	}

	txs, err := env.txs.ListByUser(user, 10)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != 1 || txs[0].Source != domain.SourceBirthday {
		t.Errorf("transactions = %+v, want one birthday credit", txs)
	}

	// Same animal, same day: already granted.
	_, err = svc.GiveReward(context.Background(), user, 1, birthday)
	if domain.KindOf(err) != domain.KindConflict {
		t.Errorf("second grant: got %v, want conflict", err)
	}
	if got := env.balance(t, user); got != 300 {
		t.Errorf("balance = %d after rejected grant, want 300", got)
	}
}

func TestBirthdayRewardWrongDay(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, 0)
	env.newAnimals(t, user)
	svc := newBirthdayService(env)

	notBirthday := time.Date(2026, time.June, 1, 10, 0, 0, 0, env.loc)
	_, err := svc.GiveReward(context.Background(), user, 1, notBirthday)
	if domain.KindOf(err) != domain.KindInvalidState {
		t.Fatalf("got %v, want invalid state", err)
	}
	if got := env.balance(t, user); got != 0 {
		t.Errorf("balance = %d, want 0", got)
	}
}

func TestBirthdayRewardUnknownAnimal(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, 0)
	svc := newBirthdayService(env)

	_, err := svc.GiveReward(context.Background(), user, 1, time.Now())
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("got %v, want not found", err)
	}
}
