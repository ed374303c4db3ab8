package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

type createWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateWorkspace handles POST /workspace. The creator becomes the OWNER
// member and the new workspace becomes their current workspace.
func (h *Handler) CreateWorkspace(c *gin.Context) {
	var req createWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}
	user := currentUser(c)
	ctx := c.Request.Context()

	workspace := &models.Workspace{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     user.ID,
	}
	if err := h.deps.Workspaces.Create(ctx, workspace); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	ownerRole, err := h.deps.Roles.FindByName(ctx, models.RoleOwner)
	if err != nil || ownerRole == nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	member := &models.Member{
		UserID:      user.ID,
		WorkspaceID: workspace.ID,
		RoleID:      ownerRole.ID,
	}
	if err := h.deps.Members.Create(ctx, member); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	ws := workspace.ID
	user.CurrentWorkspaceID = &ws
	if err := h.deps.Users.Save(ctx, user); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"workspace": workspace})
}

// ListMyWorkspaces handles GET /workspace/all: every workspace the user is a
// member of.
func (h *Handler) ListMyWorkspaces(c *gin.Context) {
	user := currentUser(c)
	ctx := c.Request.Context()

	members, err := h.deps.Members.ListByUser(ctx, user.ID)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.WorkspaceID
	}
	workspaces, err := h.deps.Workspaces.ListByIDs(ctx, ids)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workspaces": workspaces})
}

// GetWorkspace handles GET /workspace/:id.
func (h *Handler) GetWorkspace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid workspace id")
		return
	}
	user := currentUser(c)
	if !h.memberOf(c, user.ID, id) {
		return
	}

	workspace, err := h.deps.Workspaces.FindByID(c.Request.Context(), id)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if workspace == nil {
		errorJSON(c, http.StatusNotFound, "workspace not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"workspace": workspace})
}

// ListWorkspaceMembers handles GET /workspace/:id/members.
func (h *Handler) ListWorkspaceMembers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid workspace id")
		return
	}
	user := currentUser(c)
	if !h.memberOf(c, user.ID, id) {
		return
	}

	members, err := h.deps.Members.ListByWorkspace(c.Request.Context(), id)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}
