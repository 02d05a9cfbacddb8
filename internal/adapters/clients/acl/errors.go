// Package acl is the Anti-Corruption Layer between this service and a
// remote admin notes API (the WooCommerce analytics REST surface or another
// instance of this service). Resource translators live in acl/notes; the
// shared request lifecycle and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// remoteError is the union of the two error bodies the remote may send:
// RFC 9457 problem details and WordPress REST errors
// ({"code", "message", "data": {"status", "params"}}).
type remoteError struct {
	Detail  string        `json:"detail"`
	Errors  []errorDetail `json:"errors"`
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Data    struct {
		Params map[string]string `json:"params"`
	} `json:"data"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (e remoteError) detail() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

// fields returns the field-level messages of either body shape.
func (e remoteError) fields() map[string]string {
	if len(e.Errors) == 0 && len(e.Data.Params) == 0 {
		return nil
	}
	fields := make(map[string]string, len(e.Errors)+len(e.Data.Params))
	for _, d := range e.Errors {
		field := d.Location
		if _, name, ok := strings.Cut(d.Location, "."); ok {
			field = name
		}
		fields[field] = d.Message
	}
	for field, msg := range e.Data.Params {
		fields[field] = msg
	}
	return fields
}

// TranslateHTTPError maps an HTTP error response to a domain error.
// 400/422 responses with field-level errors become *domain.ValidationError.
// 429 and 5xx are reported as domain.ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	re := parseRemoteError(resp)

	detail := re.detail()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if fields := re.fields(); len(fields) > 0 {
			return &domain.ValidationError{Fields: fields}
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseRemoteError reads a JSON error body. It returns an empty value when
// the body is missing, not JSON, or malformed.
func parseRemoteError(resp *http.Response) remoteError {
	if resp.Body == nil {
		return remoteError{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/problem+json") && !strings.HasPrefix(ct, "application/json") {
		return remoteError{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return remoteError{}
	}

	var re remoteError
	if err := json.Unmarshal(body, &re); err != nil {
		return remoteError{}
	}
	return re
}
