package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewLogger_Quiet(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(false, buf)
	logger.Info("hidden")
	_ = logger.Sync()
	assert.Empty(t, buf.String())
}

func TestNewLogger_Verbose(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(true, buf)
	logger.Debug("visible", zap.String("input", "1700000000"))
	_ = logger.Sync()

	out := buf.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"msg":"visible"`)
	assert.Contains(t, out, `"input":"1700000000"`)
	assert.NotContains(t, out, `"ts"`)
}
