package service

import (
	"context"
	"errors"
	"time"

	"tamapet/internal/domain"
	"tamapet/internal/models"
	"tamapet/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService creates anonymous sessions and exposes the user's money views.
type UserService struct {
	users *repository.UserRepository
	txs   *repository.TransactionRepository
}

func NewUserService(users *repository.UserRepository, txs *repository.TransactionRepository) *UserService {
	return &UserService{users: users, txs: txs}
}

// Start creates a fresh user with a zero balance. One user per device
// session; the caller mints the session token from the returned id.
func (s *UserService) Start(ctx context.Context) (*models.User, error) {
	u := &models.User{
		UserID:    uuid.New(),
		Money:     0,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("user not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Transactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.MoneyTransaction, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.txs.ListByUser(userID, limit)
}
