package entities

// Button is one quick-reply choice (the channel caps these at 3 per message).
type Button struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ListRow is one selectable row of an interactive list (max 10 per section).
type ListRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type ListSection struct {
	Title string    `json:"title"`
	Rows  []ListRow `json:"rows"`
}

// SendOptions carries optional header/footer decoration for interactive
// messages.
type SendOptions struct {
	HeaderText string `json:"header_text,omitempty"`
	FooterText string `json:"footer_text,omitempty"`
}
