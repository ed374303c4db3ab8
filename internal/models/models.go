// Package models defines the persisted entities shared by the store, seed,
// and API layers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleName identifies one of the fixed workspace roles.
type RoleName string

const (
	RoleOwner  RoleName = "OWNER"
	RoleAdmin  RoleName = "ADMIN"
	RoleMember RoleName = "MEMBER"
)

// Permission is an atomic capability grantable through a Role.
type Permission string

const (
	PermCreateWorkspace         Permission = "CREATE_WORKSPACE"
	PermDeleteWorkspace         Permission = "DELETE_WORKSPACE"
	PermEditWorkspace           Permission = "EDIT_WORKSPACE"
	PermManageWorkspaceSettings Permission = "MANAGE_WORKSPACE_SETTINGS"
	PermAddMember               Permission = "ADD_MEMBER"
	PermChangeMemberRole        Permission = "CHANGE_MEMBER_ROLE"
	PermRemoveMember            Permission = "REMOVE_MEMBER"
	PermCreateProject           Permission = "CREATE_PROJECT"
	PermEditProject             Permission = "EDIT_PROJECT"
	PermDeleteProject           Permission = "DELETE_PROJECT"
	PermCreateTask              Permission = "CREATE_TASK"
	PermEditTask                Permission = "EDIT_TASK"
	PermDeleteTask              Permission = "DELETE_TASK"
	PermViewOnly                Permission = "VIEW_ONLY"
)

// AccountProvider identifies the authentication method bound to an Account.
type AccountProvider string

const (
	ProviderEmail  AccountProvider = "EMAIL"
	ProviderGoogle AccountProvider = "GOOGLE"
	ProviderGithub AccountProvider = "GITHUB"
)

// Role is a named permission bundle. Name is unique across all roles.
type Role struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        RoleName     `gorm:"type:varchar(32);uniqueIndex;not null" json:"name"`
	Permissions []Permission `gorm:"serializer:json" json:"permissions"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// User is an authenticated person. CurrentWorkspaceID is a back-reference
// assigned after the user's first workspace exists, not at construction.
type User struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email              string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name               string     `gorm:"type:varchar(255);not null" json:"name"`
	Password           string     `gorm:"-" json:"-"` // transient plaintext; hashed by the store write path
	PasswordHash       string     `gorm:"type:varchar(255)" json:"-"`
	CurrentWorkspaceID *uuid.UUID `gorm:"type:uuid" json:"currentWorkspace"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// Account binds one authentication provider to a User. It is created only
// after the User exists; ownership never runs the other way.
type Account struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"userId"`
	Provider   AccountProvider `gorm:"type:varchar(32);not null" json:"provider"`
	ProviderID string          `gorm:"type:varchar(255);not null" json:"providerId"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Workspace is the tenant container scoping projects, tasks, and members.
type Workspace struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null" json:"owner"`
	InviteCode  string    `gorm:"type:varchar(16);uniqueIndex" json:"inviteCode"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Member associates a User with a Workspace under a specific Role.
type Member struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;index;not null" json:"workspaceId"`
	RoleID      uuid.UUID `gorm:"type:uuid;not null" json:"roleId"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// ProjectEmoji default mirrors the frontend's placeholder.
const DefaultProjectEmoji = "📊"

// Project groups tasks inside a workspace.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;index;not null" json:"workspaceId"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Emoji       string    `gorm:"type:varchar(16)" json:"emoji"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null" json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskStatus is the workflow state of a Task.
type TaskStatus string

const (
	TaskBacklog    TaskStatus = "BACKLOG"
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskInReview   TaskStatus = "IN_REVIEW"
	TaskDone       TaskStatus = "DONE"
)

// Valid reports whether s is one of the declared workflow states.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskBacklog, TaskTodo, TaskInProgress, TaskInReview, TaskDone:
		return true
	}
	return false
}

// TaskPriority orders tasks for triage.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

// Valid reports whether p is one of the declared priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of work inside a project. TaskCode is a short human-facing
// identifier generated by the store on create.
type Task struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	TaskCode     string       `gorm:"type:varchar(16);uniqueIndex" json:"taskCode"`
	ProjectID    uuid.UUID    `gorm:"type:uuid;index;not null" json:"projectId"`
	WorkspaceID  uuid.UUID    `gorm:"type:uuid;index;not null" json:"workspaceId"`
	Title        string       `gorm:"type:varchar(255);not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	Status       TaskStatus   `gorm:"type:varchar(32);not null" json:"status"`
	Priority     TaskPriority `gorm:"type:varchar(32);not null" json:"priority"`
	AssignedToID *uuid.UUID   `gorm:"type:uuid" json:"assignedTo"`
	CreatedByID  uuid.UUID    `gorm:"type:uuid;not null" json:"createdBy"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
