package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, 1200*time.Millisecond, cfg.Chat.ThinkingMin)
	assert.Equal(t, 2*time.Second, cfg.Chat.ThinkingMax)
	assert.Equal(t, "CHAT_EVENTS", cfg.Chat.EventTopic)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("CHAT_THINKING_MIN", "0")
	t.Setenv("CHAT_THINKING_MAX", "250ms")
	t.Setenv("SNAPSHOT_CACHE_TTL", "garbage")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Duration(0), cfg.Chat.ThinkingMin)
	assert.Equal(t, 250*time.Millisecond, cfg.Chat.ThinkingMax)
	assert.Equal(t, 5*time.Second, cfg.Cache.SnapshotTTL)
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("X_DELAY", "1500")
	assert.Equal(t, 1500*time.Millisecond, getEnvAsDuration("X_DELAY", time.Second))

	t.Setenv("X_DELAY", "-5")
	assert.Equal(t, time.Second, getEnvAsDuration("X_DELAY", time.Second))
}
