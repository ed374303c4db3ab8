package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

// WorkspaceStore persists Workspace records.
type WorkspaceStore struct{ db *gorm.DB }

// Create persists a new workspace, assigning an id and invite code when unset.
func (s *WorkspaceStore) Create(ctx context.Context, workspace *models.Workspace) error {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}
	if workspace.InviteCode == "" {
		workspace.InviteCode = NewInviteCode()
	}
	return s.db.WithContext(ctx).Create(workspace).Error
}

// FindByID returns the workspace with the given id, or (nil, nil) if absent.
func (s *WorkspaceStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	var workspace models.Workspace
	err := s.db.WithContext(ctx).First(&workspace, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// FindByInviteCode resolves a workspace from its invite code, or (nil, nil)
// if the code matches nothing.
func (s *WorkspaceStore) FindByInviteCode(ctx context.Context, code string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := s.db.WithContext(ctx).Where("invite_code = ?", code).First(&workspace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// ListByIDs returns the workspaces with the given ids.
func (s *WorkspaceStore) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Workspace, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var workspaces []models.Workspace
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&workspaces).Error
	return workspaces, err
}
