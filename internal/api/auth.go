package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/session"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register handles POST /auth/register. A new user gets an email account
// binding and a personal workspace with the OWNER membership — the same
// entity chain the seed pipeline builds for the admin.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := c.Request.Context()

	existing, err := h.deps.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing != nil {
		errorJSON(c, http.StatusConflict, "email already registered")
		return
	}

	user := &models.User{Email: req.Email, Name: req.Name, Password: req.Password}
	if err := h.deps.Users.Create(ctx, user); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	account := &models.Account{UserID: user.ID, Provider: models.ProviderEmail, ProviderID: req.Email}
	if err := h.deps.Accounts.Create(ctx, account); err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	workspace := &models.Workspace{
		Name:        "My Workspace",
		Description: "Workspace created for " + req.Name,
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

	c.JSON(http.StatusCreated, gin.H{"user": user, "workspace": workspace})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login: verifies credentials and issues a session
// cookie backed by Redis.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx := c.Request.Context()

	user, err := h.deps.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		errorJSON(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	sess, err := h.deps.Sessions.Create(ctx, user.ID)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}
	session.SetCookie(c.Writer, h.deps.CookieName, sess, h.deps.CookieSecure)

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout handles POST /auth/logout: destroys the session and clears the
// cookie. Logging out without a session is a no-op success.
func (h *Handler) Logout(c *gin.Context) {
	if id := session.ReadCookie(c.Request, h.deps.CookieName); id != "" {
		if err := h.deps.Sessions.Destroy(c.Request.Context(), id); err != nil {
			errorJSON(c, http.StatusInternalServerError, "internal server error")
			return
		}
	}
	session.ClearCookie(c.Writer, h.deps.CookieName, h.deps.CookieSecure)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
