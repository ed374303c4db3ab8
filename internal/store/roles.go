package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

// RoleStore persists Role records.
type RoleStore struct{ db *gorm.DB }

// FindByName returns the role with the given name, or (nil, nil) if absent.
func (s *RoleStore) FindByName(ctx context.Context, name models.RoleName) (*models.Role, error) {
	var role models.Role
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByID returns the role with the given id, or (nil, nil) if absent.
func (s *RoleStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Role, error) {
	var role models.Role
	err := s.db.WithContext(ctx).First(&role, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Create persists a new role, assigning an id when unset.
func (s *RoleStore) Create(ctx context.Context, role *models.Role) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	return s.db.WithContext(ctx).Create(role).Error
}
