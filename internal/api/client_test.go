package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintodesk/gmao-console/internal/config"
	"github.com/maintodesk/gmao-console/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	cfg := config.Config{BaseURL: ts.URL, HTTPTimeout: 5 * time.Second}
	return New(cfg, zerolog.Nop()), ts
}

func TestStatusErrorCarriesCodeAndMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "duplicate entry for email"})
	}))

	_, err := c.CreateClient(context.Background(), models.ClientInput{FirstName: "Jean"})
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindStatus, apiErr.Kind)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "duplicate entry for email", apiErr.Message)
	assert.Equal(t, ReasonDuplicate, Classify(err))
}

func TestStatusErrorReadsMessageField(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"validation failed on scheduledTime"}`))
	}))

	_, err := c.Interventions(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "validation failed on scheduledTime", apiErr.Message)
	assert.Equal(t, ReasonValidation, Classify(err))
}

func TestNetworkErrorKind(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on
	cfg := config.Config{BaseURL: ts.URL, HTTPTimeout: time.Second}
	c := New(cfg, zerolog.Nop())

	_, err := c.Clients(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Equal(t, ReasonNetwork, Classify(err))
}

func TestDecodeErrorOnMalformedSuccess(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not json`))
	}))

	_, err := c.Clients(context.Background())
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindDecode, apiErr.Kind)
}

func TestDeleteIgnoresEmptyBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/clients/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.DeleteClient(context.Background(), 7))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Reason
	}{
		{"nil-ish plain error", errors.New("boom"), ReasonGeneric},
		{"network", &Error{Kind: KindNetwork}, ReasonNetwork},
		{"duplicate", &Error{Kind: KindStatus, Status: 409, Message: "Duplicate key value"}, ReasonDuplicate},
		{"unique", &Error{Kind: KindStatus, Status: 409, Message: "unique index violation"}, ReasonDuplicate},
		{"constraint", &Error{Kind: KindStatus, Status: 409, Message: "foreign key constraint fails"}, ReasonConstraint},
		{"conflict", &Error{Kind: KindStatus, Status: 409, Message: "schedule conflict detected"}, ReasonConflict},
		{"validation", &Error{Kind: KindStatus, Status: 400, Message: "validation error"}, ReasonValidation},
		{"plain 500", &Error{Kind: KindStatus, Status: 500, Message: "internal server error"}, ReasonGeneric},
		{"decode", &Error{Kind: KindDecode}, ReasonGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestChatRoundTrip(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ai/chat", r.URL.Path)

		var body struct {
			Message string        `json:"message"`
			History []ChatMessage `json:"history"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Combien de clients ?", body.Message)
		require.Len(t, body.History, 1)
		assert.Equal(t, ChatRoleModel, body.History[0].Role)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"reply": "Vous avez 12 clients."})
	}))

	reply, err := c.Chat(context.Background(), "Combien de clients ?",
		[]ChatMessage{{Role: ChatRoleModel, Text: "Bonjour"}})
	require.NoError(t, err)
	assert.Equal(t, "Vous avez 12 clients.", reply)
}

func TestChiffreAffaires(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/factures/chiffre-affaires", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("15230.50"))
	}))

	total, err := c.ChiffreAffaires(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15230.50, total)
}
