package models

// Discord webhook wire format. Only the subset of the embed object this
// application sends is modeled.

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Timestamp   string       `json:"timestamp"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type WebhookMessage struct {
	Embeds []Embed `json:"embeds"`
}
