package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the HTTP-surface knobs the router needs.
type RouterConfig struct {
	BasePath       string
	FrontendOrigin string
	ServiceName    string
}

// Router wraps a configured gin engine and exposes it as an http.Handler.
type Router struct {
	engine *gin.Engine
}

// NewRouter constructs a Router with the full middleware chain and all
// routes registered. Middleware order: recovery, tracing, request logging,
// CORS; the session guard applies per route group.
func NewRouter(deps Deps, cfg RouterConfig) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(Recovery(slog.Default()))
	engine.Use(Tracing(cfg.ServiceName))
	engine.Use(RequestLogger(slog.Default()))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	}))

	h := &Handler{deps: deps}

	engine.GET("/health", h.Health)
	engine.GET("/health/deep", h.DeepHealth)
	engine.GET("/ready", h.Ready)

	base := engine.Group(cfg.BasePath)

	auth := base.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)

	authed := base.Group("")
	authed.Use(h.RequireSession())

	authed.GET("/user/current", h.CurrentUser)

	authed.POST("/workspace", h.CreateWorkspace)
	authed.GET("/workspace/all", h.ListMyWorkspaces)
	authed.GET("/workspace/:id", h.GetWorkspace)
	authed.GET("/workspace/:id/members", h.ListWorkspaceMembers)

	authed.POST("/member/join/:inviteCode", h.JoinWorkspace)

	authed.POST("/project/workspace/:workspaceId", h.CreateProject)
	authed.GET("/project/workspace/:workspaceId/all", h.ListProjects)
	authed.PUT("/project/:id", h.UpdateProject)
	authed.DELETE("/project/:id", h.DeleteProject)

	authed.POST("/task/project/:projectId", h.CreateTask)
	authed.GET("/task/project/:projectId/all", h.ListProjectTasks)
	authed.GET("/task/workspace/:workspaceId/all", h.ListWorkspaceTasks)
	authed.PUT("/task/:id/status", h.UpdateTaskStatus)
	authed.DELETE("/task/:id", h.DeleteTask)

	return &Router{engine: engine}
}

// Handler returns the underlying http.Handler for use with net/http servers.
func (r *Router) Handler() http.Handler {
	return r.engine
}
