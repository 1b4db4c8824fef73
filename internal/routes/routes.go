package routes

import (
	"net/http"

	"talentscout_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route. The guard is the session
// middleware applied to authenticated endpoints.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, guard gin.HandlerFunc) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to TalentScout API"})
	})

	api := router.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, guard)
		appHandlers.UserHandler.RegisterRoutes(api, guard)
		appHandlers.TaskHandler.RegisterRoutes(api, guard)
		appHandlers.AIHandler.RegisterRoutes(api, guard)
	}
}
