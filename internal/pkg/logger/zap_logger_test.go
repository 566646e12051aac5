package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.log")
	l := NewIsolatedLogger(path)

	l.Info("CHAT", "turn completed", map[string]interface{}{"intent": "greeting"})
	l.Debug("CHAT", "dropped below file level", nil)
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, `"message":"turn completed"`)
	assert.Contains(t, out, `"module":"CHAT"`)
	assert.Contains(t, out, `"intent":"greeting"`)
	assert.False(t, strings.Contains(out, "dropped below file level"))
}

func TestNopLogger(t *testing.T) {
	var l ILogger = NewNopLogger()
	l.Error("CHAT", "ignored", map[string]interface{}{"error": "boom"})
	assert.NoError(t, l.Sync())
}
