package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/health"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/seed"
)

// Health handles GET /health — the liveness probe, always 200.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "mode": "shallow"})
}

// DeepHealth handles GET /health/deep: probes Postgres and Redis and returns
// 200 only when every probe is OK.
func (h *Handler) DeepHealth(c *gin.Context) {
	probes := health.Check(c.Request.Context(), h.deps.Probers)

	status := "healthy"
	code := http.StatusOK
	if !health.AllOK(probes) {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "dependencies": probes})
}

// Ready handles GET /ready: 200 only after the seed pipeline completed in
// this process; 503 otherwise.
func (h *Handler) Ready(c *gin.Context) {
	if h.deps.SeedState != nil && h.deps.SeedState() == seed.StateComplete {
		c.JSON(http.StatusOK, gin.H{"ready": true})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
}
