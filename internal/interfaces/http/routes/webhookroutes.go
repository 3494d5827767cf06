package routes

import (
	"github.com/gin-gonic/gin"

	webhookhandlers "tasksync/internal/interfaces/http/handlers/webhook"
)

type WebhookRouteConfig struct {
	WebhookHandler *webhookhandlers.Handler
}

func SetupWebhookRoutes(engine *gin.Engine, config *WebhookRouteConfig) {
	hooks := engine.Group("/hooks")
	{
		hooks.POST("/clickup", config.WebhookHandler.Receive)
	}
}
