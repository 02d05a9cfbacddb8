package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// call is one JSON exchange with the remote notes API.
type call struct {
	op     string
	method string
	path   string
	want   int
	in     any
	out    any
}

// roundTrip sends cl and decodes a successful body into cl.out. Any status
// other than cl.want is translated into a domain error.
func (c *NotesClient) roundTrip(ctx context.Context, cl call) (http.Header, error) {
	body := io.Reader(http.NoBody)
	if cl.in != nil {
		payload, err := json.Marshal(cl.in)
		if err != nil {
			return nil, fmt.Errorf("encoding %s body: %w", cl.op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.client.BaseURL()+cl.path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", cl.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.method == http.MethodPost {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
			_ = resp.Body.Close()
		}()
	}
	if err != nil && (resp == nil || resp.StatusCode == cl.want) {
		c.logger.ErrorContext(ctx, "remote notes request failed",
			slog.String("operation", cl.op),
			slog.String("method", cl.method),
			slog.String("path", cl.path),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s %s: %w", cl.method, cl.path, err)
	}

	if resp.StatusCode != cl.want {
		c.logger.WarnContext(ctx, "remote notes API rejected request",
			slog.String("operation", cl.op),
			slog.String("method", cl.method),
			slog.String("path", cl.path),
			slog.Int("status", resp.StatusCode),
		)
		return nil, TranslateHTTPError(resp)
	}

	if cl.out != nil {
		if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
			return nil, fmt.Errorf("decoding %s response: %w", cl.op, err)
		}
	}
	return resp.Header, nil
}
