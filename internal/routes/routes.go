package routes

import (
	"net/http"

	"careerlink_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// AppHandlers - все хендлеры приложения
type AppHandlers struct {
	AuthHandler *handlers.AuthHandler
}

// RegisterRoutes регистрирует все HTTP маршруты
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
}
