package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders lists, in lower case, the HTTP headers that carry
// credentials.
var sensitiveHeaders = []string{"authorization", "x-api-key", "cookie", "set-cookie", "x-wp-nonce"}

// IsSensitiveHeader reports whether the header name carries credentials.
func IsSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	for _, h := range sensitiveHeaders {
		if h == name {
			return true
		}
	}
	return false
}

var (
	bearerToken = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three dot-separated segments of at least ten characters, so version
	// strings like 9.1.2 stay readable.
	jwt          = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	inlineAPIKey = regexp.MustCompile(`(?i)(api[_\-]?key|apikey|consumer_secret)\s*[:=]\s*\S+`)
	// URL userinfo, e.g. postgres://notes:secret@db/notes.
	dsnPassword = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.\-]*://[^/\s:@]+:[^@\s]+@`)
	email       = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
)

func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+10)
	for _, h := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(h))
	}
	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("dsn"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerToken),
		masq.WithRegex(jwt),
		masq.WithRegex(inlineAPIKey),
		masq.WithRegex(dsnPassword),
		masq.WithRegex(email),
	)
	return masq.New(opts...)
}
