package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/resin-calc/pkg/logger"
)

func TestAdapter(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf})
	require.NoError(t, err)

	log := NewAdapter(l)
	ctx := logger.ContextWithRequestID(context.Background(), "req-1")

	log.With("component", "test").WithContext(ctx).Debug("debug entry", "shape", "circle")
	log.Warn("warn entry")

	out := buf.String()
	assert.Contains(t, out, `"msg":"debug entry"`)
	assert.Contains(t, out, `"component":"test"`)
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"shape":"circle"`)
	assert.Contains(t, out, `"level":"warn"`)
}
