// Package assistant holds the chat transcript of the maintenance assistant and
// the single-flight send round trip.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/maintodesk/gmao-console/internal/api"
)

const greeting = "👋 Bonjour ! Je suis votre assistant IA dédié à la gestion de maintenance. Posez vos questions (clients, contrats, interventions, équipements, factures, etc.)."

const (
	fallbackNoReply = "Désolé, je n'ai pas pu répondre."
	fallbackFailure = "Erreur de communication avec le service IA."
)

// ErrPending is returned while a previous send has not settled yet.
var ErrPending = errors.New("un envoi est déjà en cours")

// Caller is the remote chat endpoint, satisfied by *api.Client.
type Caller interface {
	Chat(ctx context.Context, message string, history []api.ChatMessage) (string, error)
}

// Assistant keeps an append-only transcript seeded with the greeting. One send
// may be in flight at a time; the reply (or a fallback apology) is always
// appended so a failed round trip never vanishes silently.
type Assistant struct {
	chat Caller
	log  zerolog.Logger

	mu      sync.Mutex
	history []api.ChatMessage
	pending bool
}

func New(chat Caller, log zerolog.Logger) *Assistant {
	return &Assistant{
		chat:    chat,
		log:     log.With().Str("screen", "assistant").Logger(),
		history: []api.ChatMessage{{Role: api.ChatRoleModel, Text: greeting}},
	}
}

// History returns a copy of the transcript.
func (a *Assistant) History() []api.ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]api.ChatMessage, len(a.history))
	copy(out, a.history)
	return out
}

// Pending reports whether a send is in flight; the send control stays disabled
// while it is.
func (a *Assistant) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending
}

// Send appends the operator's message, forwards it with the prior transcript,
// and appends the reply. Empty messages are ignored; a second send while one is
// pending returns ErrPending without touching the transcript.
func (a *Assistant) Send(ctx context.Context, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}

	a.mu.Lock()
	if a.pending {
		a.mu.Unlock()
		return ErrPending
	}
	prior := make([]api.ChatMessage, len(a.history))
	copy(prior, a.history)
	a.history = append(a.history, api.ChatMessage{Role: api.ChatRoleUser, Text: message})
	a.pending = true
	a.mu.Unlock()

	reply, err := a.chat.Chat(ctx, message, prior)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = false
	switch {
	case err != nil:
		a.log.Warn().Err(err).Msg("appel assistant échoué")
		a.history = append(a.history, api.ChatMessage{Role: api.ChatRoleModel, Text: fallbackFailure})
	case reply == "":
		a.history = append(a.history, api.ChatMessage{Role: api.ChatRoleModel, Text: fallbackNoReply})
	default:
		a.history = append(a.history, api.ChatMessage{Role: api.ChatRoleModel, Text: reply})
	}
	return nil
}
