package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint     string
		wantTarget   string
		wantInsecure bool
	}{
		{"http://otel-collector:4318", "otel-collector:4318", true},
		{"https://collector.example.com", "collector.example.com", false},
		{"otel-collector:4318", "otel-collector:4318", true},
	}
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			t.Parallel()
			target, insecure, err := collectorTarget(tt.endpoint)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTarget, target)
			assert.Equal(t, tt.wantInsecure, insecure)
		})
	}

	_, _, err := collectorTarget("")
	assert.ErrorIs(t, err, ErrMissingEndpoint)
}
