package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

// TaskStore persists Task records.
type TaskStore struct{ db *gorm.DB }

// Create persists a new task, assigning an id, task code, and defaults.
func (s *TaskStore) Create(ctx context.Context, task *models.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.TaskCode == "" {
		task.TaskCode = NewTaskCode()
	}
	if task.Status == "" {
		task.Status = models.TaskTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	return s.db.WithContext(ctx).Create(task).Error
}

// FindByID returns the task with the given id, or (nil, nil) if absent.
func (s *TaskStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByWorkspace returns every task in a workspace, newest first.
func (s *TaskStore) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

// ListByProject returns every task in a project, newest first.
func (s *TaskStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

// Save updates an existing task.
func (s *TaskStore) Save(ctx context.Context, task *models.Task) error {
	return s.db.WithContext(ctx).Save(task).Error
}

// Delete removes a task by id.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Task{}, "id = ?", id).Error
}
