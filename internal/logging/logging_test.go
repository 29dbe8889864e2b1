package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestIDIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "gym")

	ctx := WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "req-1", line["request_id"])
	require.Equal(t, "gym", line["service"])
	require.Equal(t, "v", line["k"])
	require.NotContains(t, line, "trace_id")
}
