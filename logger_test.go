package alpplot

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerFormat(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, nil)).With("file", "ALP_M1.root")

	logger.Info("Processing", "module", "aggregate")

	line := out.String()
	require.Regexp(t, `^\[\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\] `, line)
	assert.Contains(t, line, "[ALP_M1.root] [aggregate] Processing\n")
	assert.NotContains(t, line, "module=")
}

func TestLoggerVerbosity(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLogger(&out, &errOut, 0)
	logger.Debug("hidden", "test")
	logger.Info("shown", "test")
	logger.Error("broken")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[test] shown")
	assert.Contains(t, errOut.String(), `"msg":"broken"`)
	assert.NotContains(t, out.String(), "broken")

	out.Reset()
	NewLogger(&out, &errOut, 1).Debug("visible", "test")
	assert.Contains(t, out.String(), "[test] visible")
}
