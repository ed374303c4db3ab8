package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

// ProjectStore persists Project records.
type ProjectStore struct{ db *gorm.DB }

// Create persists a new project, assigning an id when unset.
func (s *ProjectStore) Create(ctx context.Context, project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.Emoji == "" {
		project.Emoji = models.DefaultProjectEmoji
	}
	return s.db.WithContext(ctx).Create(project).Error
}

// FindByID returns the project with the given id, or (nil, nil) if absent.
func (s *ProjectStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByWorkspace returns every project in a workspace, newest first.
func (s *ProjectStore) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

// Save updates an existing project.
func (s *ProjectStore) Save(ctx context.Context, project *models.Project) error {
	return s.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project by id.
func (s *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id).Error
}
