package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTurn(t *testing.T) {
	before := testutil.ToFloat64(TurnsTotal.WithLabelValues("greeting", OutcomeAnswered))
	ObserveTurn("greeting", OutcomeAnswered, 2*time.Millisecond)
	after := testutil.ToFloat64(TurnsTotal.WithLabelValues("greeting", OutcomeAnswered))
	assert.Equal(t, before+1, after)
}

func TestObserveRejectedAndFeedback(t *testing.T) {
	before := testutil.ToFloat64(TurnsRejectedTotal.WithLabelValues("busy"))
	ObserveRejected("busy")
	assert.Equal(t, before+1, testutil.ToFloat64(TurnsRejectedTotal.WithLabelValues("busy")))

	before = testutil.ToFloat64(FeedbackTotal.WithLabelValues("negative"))
	ObserveFeedback("negative")
	assert.Equal(t, before+1, testutil.ToFloat64(FeedbackTotal.WithLabelValues("negative")))
}
