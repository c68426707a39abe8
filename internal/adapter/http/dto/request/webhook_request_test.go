package request

import (
	"encoding/json"
	"testing"
)

func TestWebhookRequest_Events(t *testing.T) {
	t.Run("text message", func(t *testing.T) {
		payload := `{
			"object": "whatsapp_business_account",
			"entry": [{
				"id": "entry-1",
				"changes": [{
					"field": "messages",
					"value": {
						"messaging_product": "whatsapp",
						"messages": [{
							"id": "wamid.1",
							"from": "5511999999999",
							"timestamp": "1756700000",
							"type": "text",
							"text": {"body": "menu"}
						}]
					}
				}]
			}]
		}`

		var req WebhookRequest
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		events := req.Events()
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		e := events[0]
		if e.ID != "wamid.1" || e.From != "5511999999999" {
			t.Fatalf("unexpected event identity: %+v", e)
		}
		if e.Text == nil || e.Text.Body != "menu" {
			t.Fatalf("expected text payload, got %+v", e)
		}
		if e.ReceivedAt.Unix() != 1756700000 {
			t.Fatalf("unexpected timestamp: %v", e.ReceivedAt)
		}
	})

	t.Run("interactive replies", func(t *testing.T) {
		payload := `{
			"entry": [{
				"changes": [{
					"field": "messages",
					"value": {
						"messages": [
							{
								"id": "wamid.2", "from": "5511999999999", "timestamp": "1756700001",
								"type": "interactive",
								"interactive": {"type": "button_reply", "button_reply": {"id": "checkout", "title": "Checkout"}}
							},
							{
								"id": "wamid.3", "from": "5511999999999", "timestamp": "1756700002",
								"type": "interactive",
								"interactive": {"type": "list_reply", "list_reply": {"id": "grill-1", "title": "Ribeye Steak"}}
							}
						]
					}
				}]
			}]
		}`

		var req WebhookRequest
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		events := req.Events()
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].ButtonReply == nil || events[0].ButtonReply.ID != "checkout" {
			t.Fatalf("expected button reply, got %+v", events[0])
		}
		if events[1].ListReply == nil || events[1].ListReply.ID != "grill-1" {
			t.Fatalf("expected list reply, got %+v", events[1])
		}
	})

	t.Run("location and image", func(t *testing.T) {
		payload := `{
			"entry": [{
				"changes": [{
					"field": "messages",
					"value": {
						"messages": [
							{
								"id": "wamid.4", "from": "5511999999999", "timestamp": "1756700003",
								"type": "location",
								"location": {"latitude": -23.55, "longitude": -46.63, "address": "Av. Paulista, 1000"}
							},
							{
								"id": "wamid.5", "from": "5511999999999", "timestamp": "1756700004",
								"type": "image",
								"image": {"id": "media-1", "mime_type": "image/jpeg", "caption": "receipt"}
							}
						]
					}
				}]
			}]
		}`

		var req WebhookRequest
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		events := req.Events()
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		loc := events[0].Location
		if loc == nil || loc.Latitude != -23.55 || loc.Address != "Av. Paulista, 1000" {
			t.Fatalf("unexpected location: %+v", events[0])
		}
		img := events[1].Image
		if img == nil || img.URL != "media-1" || img.MimeType != "image/jpeg" {
			t.Fatalf("unexpected image: %+v", events[1])
		}
	})

	t.Run("non-message changes are skipped", func(t *testing.T) {
		payload := `{
			"entry": [{
				"changes": [{"field": "message_template_status_update", "value": {}}]
			}]
		}`

		var req WebhookRequest
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if events := req.Events(); len(events) != 0 {
			t.Fatalf("expected no events, got %d", len(events))
		}
	})
}
