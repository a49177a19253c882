// Package http expone el webhook de LINE sobre Gin.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/masanaritanaka/line-gpt-bot/internal/domain"
	"github.com/masanaritanaka/line-gpt-bot/internal/signature"
)

// signatureHeader es la cabecera donde LINE envía la firma del cuerpo.
const signatureHeader = "X-Line-Signature"

type eventHandler interface {
	HandleEvents(ctx context.Context, events []domain.Event)
}

// WebhookHandler autentica y despacha los webhooks entrantes de LINE.
type WebhookHandler struct {
	logger        *zap.Logger
	channelSecret string
	bot           eventHandler
}

// NewWebhookHandler crea el handler del webhook.
func NewWebhookHandler(logger *zap.Logger, channelSecret string, bot eventHandler) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{
		logger:        logger,
		channelSecret: channelSecret,
		bot:           bot,
	}
}

// Handle maneja POST /webhook. Solo produce 200 u 401: los fallos de eventos
// individuales no se reflejan nunca hacia la plataforma.
func (h *WebhookHandler) Handle(c *gin.Context) {
	// La firma se comprueba sobre los bytes crudos recibidos; cualquier
	// re-serialización del JSON rompería el digest.
	body, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("read webhook body failed", zap.Error(err))
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	if !signature.Validate(body, c.GetHeader(signatureHeader), h.channelSecret) {
		h.logger.Warn("signature validation failed", zap.String("client_ip", c.ClientIP()))
		c.String(http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req domain.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		// Firma válida pero cuerpo no parseable: se trata como lote vacío.
		h.logger.Warn("unmarshal webhook failed", zap.Error(err))
		c.String(http.StatusOK, "OK")
		return
	}

	h.logger.Info("webhook received", zap.Int("events", len(req.Events)))
	h.bot.HandleEvents(c.Request.Context(), req.Events)

	c.String(http.StatusOK, "OK")
}
