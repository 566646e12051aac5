package main

import (
	"strings"
	"testing"

	"devonn-assistant-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelope(t *testing.T, evt events.Event) events.Envelope {
	t.Helper()
	raw, err := events.Marshal(evt)
	require.NoError(t, err)
	env, err := events.Unmarshal(raw)
	require.NoError(t, err)
	return env
}

func TestDescribe(t *testing.T) {
	t.Run("User message", func(t *testing.T) {
		line, c := describe(envelope(t, events.New(events.TypeMessageAppended, map[string]interface{}{
			"message": map[string]interface{}{"sender": "user", "content": "hello\nthere"},
		})))
		assert.Equal(t, "user: hello there", line)
		assert.Same(t, userColor, c)
	})

	t.Run("Fallback turn", func(t *testing.T) {
		line, c := describe(envelope(t, events.New(events.TypeTurnCompleted, map[string]interface{}{
			"intent": "technical", "confidence": 0.6, "sentiment": "neutral", "fallback": true,
		})))
		assert.Equal(t, "intent=technical confidence=0.60 sentiment=neutral entities=0 0ms fallback", line)
		assert.Same(t, fallbackColor, c)
	})

	t.Run("Cleared", func(t *testing.T) {
		line, c := describe(envelope(t, events.New(events.TypeConversationCleared, nil)))
		assert.Equal(t, "{}", line)
		assert.Same(t, plainColor, c)
	})
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 100)
	out := truncate(long)
	assert.Len(t, []rune(out), maxContent)
	assert.True(t, strings.HasSuffix(out, "..."))
	assert.Equal(t, "short", truncate("short"))
}
