// Package api exposes the session-authenticated HTTP surface over gin.
package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/health"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/seed"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/session"
)

// Narrow store interfaces consumed by the handlers. The concrete types in
// internal/store satisfy them; tests inject in-memory fakes.

type userStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
}

type roleStore interface {
	FindByName(ctx context.Context, name models.RoleName) (*models.Role, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Role, error)
}

type accountStore interface {
	Create(ctx context.Context, account *models.Account) error
}

type workspaceStore interface {
	Create(ctx context.Context, workspace *models.Workspace) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error)
	FindByInviteCode(ctx context.Context, code string) (*models.Workspace, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Workspace, error)
}

type memberStore interface {
	Create(ctx context.Context, member *models.Member) error
	FindByUserAndWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) (*models.Member, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Member, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Member, error)
}

type projectStore interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Project, error)
	Save(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type taskStore interface {
	Create(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Task, error)
	Save(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sessionManager interface {
	Create(ctx context.Context, userID uuid.UUID) (*session.Session, error)
	Get(ctx context.Context, id string) (*session.Session, error)
	Destroy(ctx context.Context, id string) error
}

// Deps bundles everything the handlers need.
type Deps struct {
	Users      userStore
	Roles      roleStore
	Accounts   accountStore
	Workspaces workspaceStore
	Members    memberStore
	Projects   projectStore
	Tasks      taskStore

	Sessions sessionManager
	Probers  map[string]health.Prober

	// SeedState reports the seed pipeline state; /ready returns 200 only
	// once it is seed.StateComplete.
	SeedState func() seed.State

	CookieName   string
	CookieSecure bool
}

// Handler holds the dependencies shared across all HTTP handlers.
type Handler struct {
	deps Deps
}

func errorJSON(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}

// currentUser returns the user resolved by the session middleware.
func currentUser(c *gin.Context) *models.User {
	u, _ := c.Get(ctxUserKey)
	user, _ := u.(*models.User)
	return user
}

// memberOf verifies the user belongs to the workspace; writes a 403 and
// returns false otherwise.
func (h *Handler) memberOf(c *gin.Context, userID, workspaceID uuid.UUID) bool {
	member, err := h.deps.Members.FindByUserAndWorkspace(c.Request.Context(), userID, workspaceID)
	if err != nil {
		errorJSON(c, 500, "internal server error")
		return false
	}
	if member == nil {
		errorJSON(c, 403, "not a member of this workspace")
		return false
	}
	return true
}
