// Package dto renders errors as RFC 9457 problem details for the inbound
// HTTP adapter.
package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
)

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one invalid input. Location is "body.<field>",
// "query.<param>" or "path.<param>".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// Parameter locations for InQuery and InPath.
const (
	inBody  = "body"
	inQuery = "query"
	inPath  = "path"
)

// located tags a validation error with where its fields came from.
type located struct {
	in  string
	err error
}

func (l *located) Error() string { return l.err.Error() }
func (l *located) Unwrap() error { return l.err }

// InQuery marks err's invalid fields as query parameters.
func InQuery(err error) error { return &located{in: inQuery, err: err} }

// InPath marks err's invalid fields as path parameters.
func InPath(err error) error { return &located{in: inPath, err: err} }

// ErrMethodNotAllowed is reported for a known path with an unsupported
// method.
var ErrMethodNotAllowed = errors.New("method not allowed")

// problem is how one class of error is presented.
type problem struct {
	sentinel error
	status   int
	// opaque problems show only the status text, never err's message.
	opaque bool
}

// problems is checked in order; the first match wins.
var problems = []problem{
	{sentinel: domain.ErrValidation, status: http.StatusBadRequest},
	{sentinel: ErrMethodNotAllowed, status: http.StatusMethodNotAllowed},
	{sentinel: domain.ErrNotFound, status: http.StatusNotFound},
	{sentinel: domain.ErrForbidden, status: http.StatusForbidden},
	{sentinel: domain.ErrConflict, status: http.StatusConflict},
	{sentinel: domain.ErrUnavailable, status: http.StatusBadGateway},
	{sentinel: context.DeadlineExceeded, status: http.StatusGatewayTimeout},
	{sentinel: domain.ErrPersistence, status: http.StatusServiceUnavailable, opaque: true},
}

func classify(err error) problem {
	for _, p := range problems {
		if errors.Is(err, p.sentinel) {
			return p
		}
	}
	return problem{status: http.StatusInternalServerError, opaque: true}
}

// NewErrorResponse presents err as problem details for request r.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	p := classify(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(p.status),
		Status:   p.status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if p.opaque {
		resp.Detail = resp.Title
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		in := inBody
		var loc *located
		if errors.As(err, &loc) {
			in = loc.in
		}
		resp.Errors = details(in, verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as an application/problem+json response.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode problem response", slog.Any("error", encErr))
	}
}

// details lists fields sorted by location. A field named after its
// location, such as "body" for an unparsable body, is reported bare.
func details(in string, fields map[string]string) []ErrorDetail {
	out := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := in
		if field != in {
			loc = in + "." + field
		}
		out = append(out, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(out, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return out
}
