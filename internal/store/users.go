package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

// UserStore persists User records. The write path owns password hashing:
// a non-empty transient Password field is bcrypt-hashed into PasswordHash
// and cleared before the row is written.
type UserStore struct{ db *gorm.DB }

// FindByEmail returns the user with the given email, or (nil, nil) if absent.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with the given id, or (nil, nil) if absent.
func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create persists a new user, hashing the transient plaintext password.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if err := hashPassword(user); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(user).Error
}

// Save updates an existing user. A plaintext password set on the struct is
// re-hashed, so password changes go through the same path.
func (s *UserStore) Save(ctx context.Context, user *models.User) error {
	if err := hashPassword(user); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Save(user).Error
}

func hashPassword(user *models.User) error {
	if user.Password == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""
	return nil
}

// CheckPassword compares a plaintext candidate against the stored hash.
func CheckPassword(user *models.User, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)) == nil
}
