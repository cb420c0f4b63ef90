package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maintodesk/gmao-console/internal/config"
)

// Client is the single gateway to the backend. It is constructed once at startup
// and injected into every screen; there is no package-level instance.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

func New(cfg config.Config, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.HTTPTimeout},
		log:     log,
	}
}

// do performs one request against {baseURL}{path}. body is marshalled as JSON
// when non-nil; the response is decoded into out when the server declares JSON
// and out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindDecode, Err: err}
		}
		rd = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return &Error{Kind: KindNetwork, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("requête échouée")
		return &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := serverMessage(resp.Body)
		c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Str("message", msg).Msg("réponse en erreur")
		return &Error{Kind: KindStatus, Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "application/json") {
		// Nothing to decode; callers that expect a body treat the zero value as absent.
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindDecode, Err: err}
	}
	return nil
}

// serverMessage extracts the backend's error wording from a failed response.
// The backend answers {"error": "..."} or {"message": "..."}; anything else is
// used verbatim.
func serverMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

// Generic bindings: six resources share the same five operations.

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func get[T any](ctx context.Context, c *Client, path string, id int64) (T, error) {
	var item T
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", path, id), nil, &item)
	return item, err
}

func create[T any](ctx context.Context, c *Client, path string, in any) (T, error) {
	var item T
	err := c.do(ctx, http.MethodPost, path, in, &item)
	return item, err
}

func update[T any](ctx context.Context, c *Client, path string, id int64, in any) (T, error) {
	var item T
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", path, id), in, &item)
	return item, err
}

func remove(ctx context.Context, c *Client, path string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", path, id), nil, nil)
}
