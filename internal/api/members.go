package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

// JoinWorkspace handles POST /member/join/:inviteCode — joins the calling
// user to the workspace behind the invite code with the MEMBER role.
func (h *Handler) JoinWorkspace(c *gin.Context) {
	code := c.Param("inviteCode")
	user := currentUser(c)
	ctx := c.Request.Context()

	workspace, err := h.deps.Workspaces.FindByInviteCode(ctx, code)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if workspace == nil {
		errorJSON(c, http.StatusNotFound, "invalid invite code")
		return
	}

	existing, err := h.deps.Members.FindByUserAndWorkspace(ctx, user.ID, workspace.ID)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing != nil {
		errorJSON(c, http.StatusConflict, "already a member of this workspace")
		return
	}

	memberRole, err := h.deps.Roles.FindByName(ctx, models.RoleMember)
	if err != nil || memberRole == nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	member := &models.Member{
		UserID:      user.ID,
		WorkspaceID: workspace.ID,
		RoleID:      memberRole.ID,
	}
	if err := h.deps.Members.Create(ctx, member); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"workspaceId": workspace.ID, "member": member})
}
