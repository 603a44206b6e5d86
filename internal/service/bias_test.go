package service

import (
	"testing"

	"tamapet/pkg/emotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestRedistribute(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, 0)
	env.newAnimals(t, user)

	svc := env.careService(&emotion.Stub{})
	rate := decimal.NewFromFloat(0.3)

	if err := svc.Redistribute(env.db, user, 1, rate); err != nil {
		t.Fatalf("Redistribute: %v", err)
	}

	// Each sibling gives up 0.3333 * 0.3 = 0.09999; the target gains both.
	want := map[int]string{1: "0.5333", 2: "0.2333", 3: "0.2333"}
	sum := decimal.Zero
	for slot, w := range want {
		a := env.animal(t, user, slot)
		if a.UserPatternBias.StringFixed(4) != w {
			t.Errorf("slot %d bias = %s, want %s", slot, a.UserPatternBias, w)
		}
		sum = sum.Add(a.UserPatternBias)
	}

	// Rounding loss is kept, not renormalized away.
	if sum.StringFixed(4) != "0.9999" {
		t.Errorf("bias sum = %s, want 0.9999", sum)
	}
}

func TestRedistributeRepeated(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, 0)
	env.newAnimals(t, user)

	svc := env.careService(&emotion.Stub{})
	rate := decimal.NewFromFloat(0.3)

	for i := 0; i < 2; i++ {
		if err := svc.Redistribute(env.db, user, 2, rate); err != nil {
			t.Fatalf("Redistribute #%d: %v", i+1, err)
		}
	}

	// After the first pass: target 0.5333, siblings 0.2333 each.
	// Second pass: siblings 0.2333*0.7 = 0.16331 -> 0.1633,
	// target 0.5333 + 2*0.2333*0.3 = 0.67328 -> 0.6733.
	if a := env.animal(t, user, 2); a.UserPatternBias.StringFixed(4) != "0.6733" {
		t.Errorf("target bias = %s, want 0.6733", a.UserPatternBias)
	}
	for _, slot := range []int{1, 3} {
		if a := env.animal(t, user, slot); a.UserPatternBias.StringFixed(4) != "0.1633" {
			t.Errorf("slot %d bias = %s, want 0.1633", slot, a.UserPatternBias)
		}
	}
}

func TestRedistributeMissingTarget(t *testing.T) {
	env := newTestEnv(t)
	user := env.newUser(t, 0)
	env.newAnimals(t, user)

	svc := env.careService(&emotion.Stub{})

	// Unknown slot is a no-op, not an error.
	if err := svc.Redistribute(env.db, user, 9, decimal.NewFromFloat(0.3)); err != nil {
		t.Fatalf("Redistribute: %v", err)
	}
	for slot := 1; slot <= 3; slot++ {
		if a := env.animal(t, user, slot); a.UserPatternBias.StringFixed(4) != "0.3333" {
			t.Errorf("slot %d bias = %s, want untouched 0.3333", slot, a.UserPatternBias)
		}
	}

	// No animals at all is equally a no-op.
	if err := svc.Redistribute(env.db, uuid.New(), 1, decimal.NewFromFloat(0.3)); err != nil {
		t.Fatalf("Redistribute with no animals: %v", err)
	}
}
