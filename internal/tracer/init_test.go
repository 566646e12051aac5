package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitTracerDisabled(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "false")

	shutdown := InitTracer()
	assert.NoError(t, shutdown(context.Background()))
}
