package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

// MemberStore persists workspace memberships.
type MemberStore struct{ db *gorm.DB }

// Create persists a new membership, assigning an id and join time when unset.
func (s *MemberStore) Create(ctx context.Context, member *models.Member) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}
	return s.db.WithContext(ctx).Create(member).Error
}

// FindByUserAndWorkspace returns the membership linking a user to a
// workspace, or (nil, nil) if the user is not a member.
func (s *MemberStore) FindByUserAndWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND workspace_id = ?", userID, workspaceID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByWorkspace returns every membership in a workspace.
func (s *MemberStore) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := s.db.WithContext(ctx).Where("workspace_id = ?", workspaceID).Find(&members).Error
	return members, err
}

// ListByUser returns every membership held by a user.
func (s *MemberStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&members).Error
	return members, err
}
