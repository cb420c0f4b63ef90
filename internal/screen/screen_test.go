package screen

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/maintodesk/gmao-console/internal/api"
	"github.com/maintodesk/gmao-console/internal/config"
)

// backend is a scriptable fake API server. Handlers are keyed by "METHOD /path";
// every request is recorded, including the raw body for payload assertions.
type backend struct {
	mu       sync.Mutex
	calls    []backendCall
	handlers map[string]http.HandlerFunc
	server   *httptest.Server
}

type backendCall struct {
	Method string
	Path   string
	Body   []byte
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{handlers: map[string]http.HandlerFunc{}}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.calls = append(b.calls, backendCall{Method: r.Method, Path: r.URL.Path, Body: body})
		h := b.handlers[r.Method+" "+r.URL.Path]
		b.mu.Unlock()
		if h == nil {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *backend) handle(route string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[route] = h
}

// respond registers a handler that answers with the given value as JSON.
func (b *backend) respond(route string, v any) {
	b.handle(route, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	})
}

// fail registers a handler that answers with the given status and error message.
func (b *backend) fail(route string, status int, message string) {
	b.handle(route, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": message})
	})
}

// count returns how many recorded calls match the route.
func (b *backend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

// lastBody returns the body of the last call matching the route.
func (b *backend) lastBody(method, path string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.calls) - 1; i >= 0; i-- {
		if b.calls[i].Method == method && b.calls[i].Path == path {
			return b.calls[i].Body
		}
	}
	return nil
}

func (b *backend) gateway() *api.Client {
	cfg := config.Config{BaseURL: b.server.URL, HTTPTimeout: 5 * time.Second}
	return api.New(cfg, zerolog.Nop())
}

// fakeNotifier records every notification. Confirm answers with the configured
// value and counts how often it was asked.
type fakeNotifier struct {
	confirm     bool
	confirmAsks int
	successes   []Msg
	errors      []Msg
	warnings    []Msg
	loadings    int
}

func (n *fakeNotifier) Success(title, text string) { n.successes = append(n.successes, Msg{title, text}) }
func (n *fakeNotifier) Error(title, text string)   { n.errors = append(n.errors, Msg{title, text}) }
func (n *fakeNotifier) Warning(title, text string) { n.warnings = append(n.warnings, Msg{title, text}) }

func (n *fakeNotifier) Confirm(title, text, confirmLabel, cancelLabel string) bool {
	n.confirmAsks++
	return n.confirm
}

func (n *fakeNotifier) Loading(title, text string) func() {
	n.loadings++
	return func() {}
}

func (n *fakeNotifier) lastError() Msg {
	if len(n.errors) == 0 {
		return Msg{}
	}
	return n.errors[len(n.errors)-1]
}

func (n *fakeNotifier) lastSuccess() Msg {
	if len(n.successes) == 0 {
		return Msg{}
	}
	return n.successes[len(n.successes)-1]
}
