package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	logger := Component("controller")
	logger.Info().Msg("drag started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "controller", entry["cmp"])
	assert.Equal(t, "drag started", entry["message"])
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetDocument(ctx))
	assert.Empty(t, GetOperation(ctx))

	ctx = WithDocument(ctx, "/tmp/mindmap.txt")
	ctx = WithOperation(ctx, "load")

	assert.Equal(t, "/tmp/mindmap.txt", GetDocument(ctx))
	assert.Equal(t, "load", GetOperation(ctx))
}

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		ctx       func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "document and operation",
			ctx: func() context.Context {
				return WithOperation(WithDocument(context.Background(), "a.txt"), "save")
			},
			wantKeys: []string{"document", "operation"},
		},
		{
			name: "only document",
			ctx: func() context.Context {
				return WithDocument(context.Background(), "a.txt")
			},
			wantKeys:  []string{"document"},
			wantEmpty: []string{"operation"},
		},
		{
			name:      "no context values",
			ctx:       context.Background,
			wantEmpty: []string{"document", "operation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(tt.ctx()).Msg("test")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			for _, key := range tt.wantKeys {
				assert.Contains(t, entry, key)
			}
			for _, key := range tt.wantEmpty {
				assert.NotContains(t, entry, key)
			}
		})
	}
}
