package routes

import (
	"net/http"

	"fitpath_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler group onto the engine root. Routes live
// at the root path, matching the API the frontend already talks to.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "FitPath Server is running")
	})
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.SlotHandler.RegisterRoutes(api)
		appHandlers.PaymentHandler.RegisterRoutes(api)
		appHandlers.ReviewHandler.RegisterRoutes(api)
		appHandlers.ForumHandler.RegisterRoutes(api)
		appHandlers.NewsletterHandler.RegisterRoutes(api)
		appHandlers.ClassHandler.RegisterRoutes(api)
	}
}
