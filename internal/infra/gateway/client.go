// Package gateway is the outbound client for the remote job-board API, the
// owner of all durable marketplace data. The core treats it as a collaborator
// that either resolves with typed data or fails with a human-readable message;
// HTTP status codes beyond "succeeded" vs "failed" stay inside this package.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"thejulge/internal/infra"
	"thejulge/internal/infra/session"
	"thejulge/internal/pkg/config"
)

type Client struct {
	http    *http.Client
	baseURL string
	token   func() string
	logger  *slog.Logger
}

func NewClient(cfg config.RemoteConfig, sess *session.Session, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   sess.Token,
		logger:  logger,
	}
}

// do executes one request against the remote API. A transport failure maps to
// KindUnreachable; an error response maps to KindRejected (or KindNotFound)
// carrying the server's message verbatim.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return infra.WrapGatewayErr(infra.KindRejected, "failed to encode request", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return infra.WrapGatewayErr(infra.KindRejected, "failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(infra.KindUnreachable, "no response from remote API", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapGatewayErr(infra.KindUnreachable, "failed to read remote response", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := remoteErrorMessage(raw, resp.StatusCode)
		kind := infra.KindRejected
		if resp.StatusCode == http.StatusNotFound {
			kind = infra.KindNotFound
		}
		c.logger.Warn("remote API rejected request",
			"method", method, "path", path, "status", resp.StatusCode, "message", msg)
		return infra.WrapGatewayErr(kind, msg, nil)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return infra.WrapGatewayErr(infra.KindRejected, "failed to decode remote response", err)
		}
	}
	return nil
}

func remoteErrorMessage(raw []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return http.StatusText(status)
}
