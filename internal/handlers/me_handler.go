package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
)

// MeHandler echoes the identity carried by the bearer token. Accounts live
// with the identity provider, not here.
type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    actor.ID,
			"name":  actor.Name,
			"email": actor.Email,
			"role":  actor.Role,
		},
	})
}
