package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

type createTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
}

// CreateTask handles POST /task/project/:projectId.
func (h *Handler) CreateTask(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid project id")
		return
	}
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}
	// Empty status/priority are allowed; the store fills in the defaults.
	if req.Status != "" && !models.TaskStatus(req.Status).Valid() {
		errorJSON(c, http.StatusBadRequest, "invalid task status")
		return
	}
	if req.Priority != "" && !models.TaskPriority(req.Priority).Valid() {
		errorJSON(c, http.StatusBadRequest, "invalid task priority")
		return
	}
	ctx := c.Request.Context()

	project, err := h.deps.Projects.FindByID(ctx, projectID)
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

	task := &models.Task{
		ProjectID:    project.ID,
		WorkspaceID:  project.WorkspaceID,
		Title:        req.Title,
		Description:  req.Description,
		Status:       models.TaskStatus(req.Status),
		Priority:     models.TaskPriority(req.Priority),
		AssignedToID: req.AssignedTo,
		CreatedByID:  user.ID,
	}
	if err := h.deps.Tasks.Create(ctx, task); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// ListProjectTasks handles GET /task/project/:projectId/all.
func (h *Handler) ListProjectTasks(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid project id")
		return
	}
	ctx := c.Request.Context()

	project, err := h.deps.Projects.FindByID(ctx, projectID)
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

	tasks, err := h.deps.Tasks.ListByProject(ctx, projectID)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// ListWorkspaceTasks handles GET /task/workspace/:workspaceId/all.
func (h *Handler) ListWorkspaceTasks(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("workspaceId"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid workspace id")
		return
	}
	user := currentUser(c)
	if !h.memberOf(c, user.ID, workspaceID) {
		return
	}

	tasks, err := h.deps.Tasks.ListByWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

type updateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

// UpdateTaskStatus handles PUT /task/:id/status.
func (h *Handler) UpdateTaskStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid task id")
		return
	}
	var req updateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		errorJSON(c, http.StatusBadRequest, "invalid task status")
		return
	}
	ctx := c.Request.Context()

	task, err := h.deps.Tasks.FindByID(ctx, id)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if task == nil {
		errorJSON(c, http.StatusNotFound, "task not found")
		return
	}
	user := currentUser(c)
	if !h.memberOf(c, user.ID, task.WorkspaceID) {
		return
	}

	task.Status = req.Status
	if err := h.deps.Tasks.Save(ctx, task); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// DeleteTask handles DELETE /task/:id.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid task id")
		return
	}
	ctx := c.Request.Context()

	task, err := h.deps.Tasks.FindByID(ctx, id)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if task == nil {
		errorJSON(c, http.StatusNotFound, "task not found")
		return
	}
	user := currentUser(c)
	if !h.memberOf(c, user.ID, task.WorkspaceID) {
		return
	}

	if err := h.deps.Tasks.Delete(ctx, id); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
