package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

const defaultGraphAPIBaseURL = "https://graph.facebook.com/v22.0"

// WhatsAppMessenger sends messages through the WhatsApp Cloud API. Interactive
// payloads follow the Graph API message schema; the base URL is injectable so
// tests can point it at a local server.
type WhatsAppMessenger struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	phoneNumberID string
}

var _ interfaces.IMessenger = (*WhatsAppMessenger)(nil)

func NewWhatsAppMessenger(token, phoneNumberID, baseURL string, timeout time.Duration) *WhatsAppMessenger {
	if baseURL == "" {
		baseURL = defaultGraphAPIBaseURL
	}
	return &WhatsAppMessenger{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       baseURL,
		token:         token,
		phoneNumberID: phoneNumberID,
	}
}

func (m *WhatsAppMessenger) SendText(ctx context.Context, to, body string) error {
	return m.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                to,
		"type":              "text",
		"text": map[string]any{
			"preview_url": false,
			"body":        body,
		},
	})
}

func (m *WhatsAppMessenger) SendReplyButtons(ctx context.Context, to, body string, buttons []entities.Button, opts *entities.SendOptions) error {
	// The Cloud API caps reply buttons at three per message.
	if len(buttons) > 3 {
		buttons = buttons[:3]
	}

	btns := make([]map[string]any, 0, len(buttons))
	for _, b := range buttons {
		btns = append(btns, map[string]any{
			"type": "reply",
			"reply": map[string]any{
				"id":    b.ID,
				"title": b.Title,
			},
		})
	}

	interactive := map[string]any{
		"type":   "button",
		"body":   map[string]any{"text": body},
		"action": map[string]any{"buttons": btns},
	}
	applySendOptions(interactive, opts)

	return m.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                to,
		"type":              "interactive",
		"interactive":       interactive,
	})
}

func (m *WhatsAppMessenger) SendList(ctx context.Context, to, buttonLabel, body string, sections []entities.ListSection, opts *entities.SendOptions) error {
	secs := make([]map[string]any, 0, len(sections))
	for _, s := range sections {
		rows := make([]map[string]any, 0, len(s.Rows))
		for _, r := range s.Rows {
			row := map[string]any{
				"id":    r.ID,
				"title": r.Title,
			}
			if r.Description != "" {
				row["description"] = r.Description
			}
			rows = append(rows, row)
		}
		secs = append(secs, map[string]any{
			"title": s.Title,
			"rows":  rows,
		})
	}

	interactive := map[string]any{
		"type": "list",
		"body": map[string]any{"text": body},
		"action": map[string]any{
			"button":   buttonLabel,
			"sections": secs,
		},
	}
	applySendOptions(interactive, opts)

	return m.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                to,
		"type":              "interactive",
		"interactive":       interactive,
	})
}

func (m *WhatsAppMessenger) RequestLocation(ctx context.Context, to, body string) error {
	return m.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                to,
		"type":              "interactive",
		"interactive": map[string]any{
			"type":   "location_request_message",
			"body":   map[string]any{"text": body},
			"action": map[string]any{"name": "send_location"},
		},
	})
}

func (m *WhatsAppMessenger) SendTemplate(ctx context.Context, to, name, languageCode string, bodyParams []string) error {
	params := make([]map[string]any, 0, len(bodyParams))
	for _, p := range bodyParams {
		params = append(params, map[string]any{"type": "text", "text": p})
	}

	template := map[string]any{
		"name":     name,
		"language": map[string]any{"code": languageCode},
	}
	if len(params) > 0 {
		template["components"] = []map[string]any{
			{"type": "body", "parameters": params},
		}
	}

	return m.send(ctx, map[string]any{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                to,
		"type":              "template",
		"template":          template,
	})
}

func applySendOptions(interactive map[string]any, opts *entities.SendOptions) {
	if opts == nil {
		return
	}
	if opts.HeaderText != "" {
		interactive["header"] = map[string]any{"type": "text", "text": opts.HeaderText}
	}
	if opts.FooterText != "" {
		interactive["footer"] = map[string]any{"text": opts.FooterText}
	}
}

func (m *WhatsAppMessenger) send(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", m.baseURL, m.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error().Int("status", resp.StatusCode).Str("response", string(respBody)).
			Msg("whatsapp send rejected")
		return fmt.Errorf("whatsapp send failed with status %d", resp.StatusCode)
	}
	return nil
}
