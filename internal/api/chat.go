package api

import (
	"context"
	"net/http"
)

// ChatMessage is one transcript entry, as the assistant endpoint expects it.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// Chat sends one message plus the prior transcript and returns the reply text.
// An empty reply field on a successful response is reported as such so the
// caller can substitute its fallback wording.
func (c *Client) Chat(ctx context.Context, message string, history []ChatMessage) (string, error) {
	body := struct {
		Message string        `json:"message"`
		History []ChatMessage `json:"history"`
	}{Message: message, History: history}

	var out struct {
		Reply string `json:"reply"`
	}
	if err := c.do(ctx, http.MethodPost, "/ai/chat", body, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}
