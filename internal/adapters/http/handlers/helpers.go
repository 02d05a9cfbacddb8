package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/admin-notes-service/internal/adapters/notejson"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain"
	"github.com/jsamuelsen11/admin-notes-service/internal/domain/note"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, dto.InPath(domain.NewFieldError(param, "must be a positive integer"))
	}
	return id, nil
}

// parseNoteFilter reads type, status, limit and offset from the query
// string. type and status accept repeated or comma-separated values.
func parseNoteFilter(r *http.Request) (note.Filter, error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	filter := note.Filter{Limit: defaultPageSize}
	for _, v := range splitQuery(q, "type") {
		filter.Types = append(filter.Types, note.Type(v))
	}
	for _, v := range splitQuery(q, "status") {
		filter.Statuses = append(filter.Statuses, note.Status(v))
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPageSize {
			fields["limit"] = "must be between 1 and " + strconv.Itoa(maxPageSize)
		} else {
			filter.Limit = n
		}
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fields["offset"] = "must be a non-negative integer"
		} else {
			filter.Offset = n
		}
	}

	if len(fields) > 0 {
		return note.Filter{}, dto.InQuery(&domain.ValidationError{Fields: fields})
	}
	return filter, nil
}

func splitQuery(q url.Values, key string) []string {
	var out []string
	for _, v := range q[key] {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response body not fully written", slog.Int("status", status), slog.Any("error", err))
	}
}

// bodyLimit caps request bodies at 1 MiB.
const bodyLimit = 1 << 20

// readBody decodes a single JSON value from the request into dst. It writes a
// 400 naming what was wrong with the body and reports false on failure.
func readBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, bodyLimit))
	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errTrailingData
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, domain.NewFieldError("body", bodyProblem(err)))
		return false
	}
	return true
}

var errTrailingData = errors.New("trailing data")

func bodyProblem(err error) string {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		sizeErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &sizeErr):
		return fmt.Sprintf("must not exceed %d bytes", sizeErr.Limit)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		want := typeErr.Type.String()
		if notejson.IsDateValue(typeErr.Type) {
			want = notejson.DateFormats
		}
		return fmt.Sprintf("field %q must be %s", typeErr.Field, want)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "invalid JSON"
	case errors.Is(err, io.EOF):
		return "must not be empty"
	case errors.Is(err, errTrailingData):
		return "must hold a single JSON value"
	default:
		return "invalid JSON"
	}
}

type validator interface {
	Validate() error
}

// bind reads the body into dst and runs its own validation.
func bind[T validator](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !readBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
