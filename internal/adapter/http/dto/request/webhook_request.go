package request

import (
	"strconv"
	"time"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
)

// WebhookRequest is the WhatsApp Cloud API webhook envelope. Only the
// "messages" change field is meaningful here; status updates and other change
// types carry no messages and flatten to nothing.
type WebhookRequest struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

type ChangeValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Messages         []InboundMessage `json:"messages"`
}

type InboundMessage struct {
	ID          string              `json:"id"`
	From        string              `json:"from"`
	Timestamp   string              `json:"timestamp"`
	Type        string              `json:"type"`
	Text        *TextMessage        `json:"text,omitempty"`
	Interactive *InteractiveMessage `json:"interactive,omitempty"`
	Image       *ImageMessage       `json:"image,omitempty"`
	Location    *LocationMessage    `json:"location,omitempty"`
}

type TextMessage struct {
	Body string `json:"body"`
}

type InteractiveMessage struct {
	Type        string `json:"type"`
	ButtonReply *Reply `json:"button_reply,omitempty"`
	ListReply   *Reply `json:"list_reply,omitempty"`
}

type Reply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ImageMessage struct {
	ID       string `json:"id"`
	Link     string `json:"link,omitempty"`
	MimeType string `json:"mime_type"`
	Caption  string `json:"caption,omitempty"`
}

type LocationMessage struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// Events flattens the envelope into domain events, skipping anything that is
// not an inbound customer message.
func (r WebhookRequest) Events() []entities.InboundEvent {
	var events []entities.InboundEvent
	for _, entry := range r.Entry {
		for _, change := range entry.Changes {
			if change.Field != "messages" {
				continue
			}
			for _, msg := range change.Value.Messages {
				events = append(events, msg.toEvent())
			}
		}
	}
	return events
}

func (m InboundMessage) toEvent() entities.InboundEvent {
	event := entities.InboundEvent{
		ID:         m.ID,
		From:       m.From,
		ReceivedAt: parseTimestamp(m.Timestamp),
	}

	switch {
	case m.Interactive != nil && m.Interactive.ListReply != nil:
		event.ListReply = &entities.ReplyPayload{
			ID:    m.Interactive.ListReply.ID,
			Title: m.Interactive.ListReply.Title,
		}
	case m.Interactive != nil && m.Interactive.ButtonReply != nil:
		event.ButtonReply = &entities.ReplyPayload{
			ID:    m.Interactive.ButtonReply.ID,
			Title: m.Interactive.ButtonReply.Title,
		}
	case m.Text != nil:
		event.Text = &entities.TextPayload{Body: m.Text.Body}
	case m.Image != nil:
		url := m.Image.Link
		if url == "" {
			url = m.Image.ID
		}
		event.Image = &entities.ImagePayload{
			URL:      url,
			MimeType: m.Image.MimeType,
			Caption:  m.Image.Caption,
		}
	case m.Location != nil:
		event.Location = &entities.LocationPayload{
			Latitude:  m.Location.Latitude,
			Longitude: m.Location.Longitude,
			Name:      m.Location.Name,
			Address:   m.Location.Address,
		}
	}
	return event
}

func parseTimestamp(ts string) time.Time {
	sec, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return time.Now()
	}
	return time.Unix(sec, 0)
}
