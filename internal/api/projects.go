package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

type projectRequest struct {
	Name        string `json:"name" binding:"required"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// CreateProject handles POST /project/workspace/:workspaceId.
func (h *Handler) CreateProject(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("workspaceId"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid workspace id")
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}
	user := currentUser(c)
	if !h.memberOf(c, user.ID, workspaceID) {
		return
	}

	project := &models.Project{
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Emoji:       req.Emoji,
		Description: req.Description,
		CreatedByID: user.ID,
	}
	if err := h.deps.Projects.Create(c.Request.Context(), project); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// ListProjects handles GET /project/workspace/:workspaceId/all.
func (h *Handler) ListProjects(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("workspaceId"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid workspace id")
		return
	}
	user := currentUser(c)
	if !h.memberOf(c, user.ID, workspaceID) {
		return
	}

	projects, err := h.deps.Projects.ListByWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// UpdateProject handles PUT /project/:id.
func (h *Handler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid project id")
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := c.Request.Context()

	project, err := h.deps.Projects.FindByID(ctx, id)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		errorJSON(c, http.StatusNotFound, "project not found")
		return
	}
	user := currentUser(c)
	if !h.memberOf(c, user.ID, project.WorkspaceID) {
		return
	}

	project.Name = req.Name
	project.Emoji = req.Emoji
	project.Description = req.Description
	if err := h.deps.Projects.Save(ctx, project); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// DeleteProject handles DELETE /project/:id.
func (h *Handler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid project id")
		return
	}
	ctx := c.Request.Context()

	project, err := h.deps.Projects.FindByID(ctx, id)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		errorJSON(c, http.StatusNotFound, "project not found")
		return
	}
	user := currentUser(c)
	if !h.memberOf(c, user.ID, project.WorkspaceID) {
		return
	}

	if err := h.deps.Projects.Delete(ctx, id); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
