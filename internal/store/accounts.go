package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

// AccountStore persists authentication-provider bindings.
type AccountStore struct{ db *gorm.DB }

// Create persists a new account, assigning an id when unset.
func (s *AccountStore) Create(ctx context.Context, account *models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(account).Error
}
