package service

import (
	"errors"
	"time"

	"tamapet/internal/domain"
	"tamapet/internal/models"
	"tamapet/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerService applies signed money deltas to user balances and keeps the
// append-only transaction log. It never commits on its own; every call
// participates in the caller's transaction.
type LedgerService struct {
	users *repository.UserRepository
	txs   *repository.TransactionRepository
}

func NewLedgerService(users *repository.UserRepository, txs *repository.TransactionRepository) *LedgerService {
	return &LedgerService{users: users, txs: txs}
}

// Apply debits (amount < 0) or credits (amount > 0) the user inside tx. The
// user row stays locked until tx commits, so two concurrent debits cannot
// both read a pre-debit balance.
func (s *LedgerService) Apply(tx *gorm.DB, userID uuid.UUID, amount int64, source string) (*models.MoneyTransaction, error) {
	users := s.users.WithTx(tx)

	user, err := users.GetByIDForUpdate(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("user not found")
		}
		return nil, err
	}

	newBalance := user.Money + amount
	if newBalance < 0 {
		return nil, domain.InsufficientFunds(user.Money, -amount)
	}

	if err := users.UpdateMoney(userID, newBalance); err != nil {
		return nil, err
	}

	direction := domain.DirectionOut
	if amount > 0 {
		direction = domain.DirectionIn
	}
	record := &models.MoneyTransaction{
		TxID:         uuid.NewString(),
		UserID:       userID,
		Amount:       amount,
		Direction:    direction,
		Source:       source,
		CurrentMoney: newBalance,
		CreatedAt:    time.Now(),
	}
	if err := s.txs.WithTx(tx).Create(record); err != nil {
		return nil, err
	}
	return record, nil
}
