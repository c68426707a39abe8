package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	request "github.com/JeSappelleWilly/dokalbot/internal/adapter/http/dto/request"
	"github.com/JeSappelleWilly/dokalbot/internal/adapter/http/middlewares"
	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

// WebhookHandler terminates the WhatsApp Cloud API webhook. The POST leg
// always answers 200: Meta retries non-2xx responses, and retrying a handler
// failure would just replay the same failure with a duplicate event.
type WebhookHandler struct {
	router      interfaces.IEventRouter
	verifyToken string
}

func NewWebhookHandler(router interfaces.IEventRouter, verifyToken string) *WebhookHandler {
	return &WebhookHandler{router: router, verifyToken: verifyToken}
}

// Verify handles the GET subscription handshake.
func (h *WebhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		c.String(http.StatusOK, challenge)
		return
	}

	log.Warn().Str("mode", mode).Msg("webhook verification rejected")
	c.Status(http.StatusForbidden)
}

// Receive handles inbound event batches.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var req request.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("unparseable webhook payload")
		c.Status(http.StatusOK)
		return
	}

	for _, event := range req.Events() {
		err := h.router.HandleEvent(c.Request.Context(), event)
		middlewares.RecordConversationEvent(eventKind(event), err == nil)
		if err != nil {
			log.Error().Err(err).Str("event_id", event.ID).Msg("event handling failed")
		}
	}

	c.Status(http.StatusOK)
}

func eventKind(event entities.InboundEvent) string {
	switch {
	case event.ListReply != nil:
		return "list_reply"
	case event.ButtonReply != nil:
		return "button_reply"
	case event.Text != nil:
		return "text"
	case event.Image != nil:
		return "image"
	case event.Location != nil:
		return "location"
	default:
		return "unknown"
	}
}
