package routes

import (
	"github.com/gin-gonic/gin"

	settingshandlers "tasksync/internal/interfaces/http/handlers/settings"
)

type SettingsRouteConfig struct {
	SettingsHandler *settingshandlers.Handler
}

func SetupSettingsRoutes(engine *gin.Engine, config *SettingsRouteConfig) {
	configs := engine.Group("/settings/configs")
	{
		// Specific paths before parameterized paths to avoid route conflicts
		configs.GET("", config.SettingsHandler.List)
		configs.POST("", config.SettingsHandler.Save)
		configs.POST("/check-project", config.SettingsHandler.CheckProject)

		configs.PUT("/:id", config.SettingsHandler.Update)
		configs.DELETE("/:id", config.SettingsHandler.Delete)
	}
}
