package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	settingsusecases "tasksync/internal/application/settings/usecases"
	webhookusecases "tasksync/internal/application/webhook/usecases"
	"tasksync/internal/infrastructure/config"
	"tasksync/internal/infrastructure/repository"
	settingshandlers "tasksync/internal/interfaces/http/handlers/settings"
	webhookhandlers "tasksync/internal/interfaces/http/handlers/webhook"
	"tasksync/internal/interfaces/http/middleware"
	"tasksync/internal/interfaces/http/routes"
	"tasksync/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine          *gin.Engine
	webhookHandler  *webhookhandlers.Handler
	settingsHandler *settingshandlers.Handler
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	listenerRepo := repository.NewListenerRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)
	commentRepo := repository.NewCommentRepository(db, log)

	columnCache := webhookusecases.NewColumnCache(listenerRepo, log)
	statusResolver := webhookusecases.NewStatusResolver(ticketRepo, log)
	authenticator := webhookusecases.NewAuthenticator(log)
	taskReconciler := webhookusecases.NewTaskReconciler(
		listenerRepo, ticketRepo, commentRepo, columnCache, statusResolver, log)
	commentReconciler := webhookusecases.NewCommentReconciler(listenerRepo, commentRepo, log)
	processWebhook := webhookusecases.NewProcessWebhookUseCase(
		listenerRepo, authenticator, taskReconciler, commentReconciler, log)

	webhookHandler := webhookhandlers.NewHandler(processWebhook, cfg.Webhook.MaxBodyBytes, log)

	settingsHandler := settingshandlers.NewHandler(
		settingsusecases.NewListConfigsUseCase(listenerRepo, log),
		settingsusecases.NewSaveConfigUseCase(listenerRepo, ticketRepo, log),
		settingsusecases.NewUpdateConfigUseCase(listenerRepo, ticketRepo, log),
		settingsusecases.NewDeleteConfigUseCase(listenerRepo, log),
		settingsusecases.NewCheckProjectUseCase(ticketRepo, log),
		log,
	)

	return &Router{
		engine:          engine,
		webhookHandler:  webhookHandler,
		settingsHandler: settingsHandler,
	}
}

// SetupRoutes registers middleware and all route groups
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.ErrorHandler())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupWebhookRoutes(r.engine, &routes.WebhookRouteConfig{
		WebhookHandler: r.webhookHandler,
	})
	routes.SetupSettingsRoutes(r.engine, &routes.SettingsRouteConfig{
		SettingsHandler: r.settingsHandler,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
