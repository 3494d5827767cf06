package webhook

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasksync/internal/application/webhook/usecases"
	"tasksync/internal/shared/constants"
	"tasksync/internal/shared/logger"
	"tasksync/internal/shared/utils"
)

// WebhookProcessor processes one raw webhook delivery.
type WebhookProcessor interface {
	Execute(ctx context.Context, cmd usecases.ProcessWebhookCommand) (*usecases.ProcessWebhookResult, error)
}

// Handler receives ClickUp webhook deliveries. The raw body is read
// before any parsing because signature verification runs over the
// exact bytes ClickUp sent.
type Handler struct {
	processor    WebhookProcessor
	maxBodyBytes int64
	logger       logger.Interface
}

func NewHandler(processor WebhookProcessor, maxBodyBytes int64, logger logger.Interface) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}
	return &Handler{
		processor:    processor,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// Receive handles POST /hooks/clickup.
func (h *Handler) Receive(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		h.logger.Warnw("failed to read webhook body", "error", err)
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}

	result, err := h.processor.Execute(c.Request.Context(), usecases.ProcessWebhookCommand{
		Body:      body,
		Signature: c.GetHeader(constants.HeaderXSignature),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, nil)
}
