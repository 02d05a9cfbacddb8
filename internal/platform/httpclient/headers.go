package httpclient

import (
	"context"
	"maps"
	"net/http"
)

type outboundHeadersKey struct{}

// WithOutboundHeader returns a context that makes every request sent with it
// carry the header name: value. Inbound middleware uses it to forward
// request and correlation IDs.
func WithOutboundHeader(ctx context.Context, name, value string) context.Context {
	if value == "" {
		return ctx
	}
	prev, _ := ctx.Value(outboundHeadersKey{}).(map[string]string)
	next := make(map[string]string, len(prev)+1)
	maps.Copy(next, prev)
	next[http.CanonicalHeaderKey(name)] = value
	return context.WithValue(ctx, outboundHeadersKey{}, next)
}

// OutboundHeaders returns the headers registered on ctx.
func OutboundHeaders(ctx context.Context) map[string]string {
	h, _ := ctx.Value(outboundHeadersKey{}).(map[string]string)
	return maps.Clone(h)
}

func propagateHeaders(ctx context.Context, h http.Header) {
	for name, value := range OutboundHeaders(ctx) {
		h.Set(name, value)
	}
}
