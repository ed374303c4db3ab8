package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CurrentUser handles GET /user/current.
func (h *Handler) CurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}
