package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careconnect_backend/internal/handlers"
)

// RegisterRoutes mounts all HTTP routes. authMW guards everything except
// registration, login and the health probe.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, authMW gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	appHandlers.AuthHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(authMW)
	{
		appHandlers.AuthHandler.RegisterUserRoutes(protected)
		appHandlers.BloodHandler.RegisterRoutes(protected)
		appHandlers.DeviceHandler.RegisterRoutes(protected)
		appHandlers.CaregiverHandler.RegisterRoutes(protected)
		appHandlers.NotificationHandler.RegisterRoutes(protected)
		appHandlers.SharingHandler.RegisterRoutes(protected)
	}
}
