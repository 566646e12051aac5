// Package metrics exposes Prometheus instruments for the conversation pipeline.
// Labels are bounded: intent types, outcomes and feedback values only.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Turn outcomes
const (
	OutcomeAnswered  = "answered"
	OutcomeFallback  = "fallback"
	OutcomeCancelled = "cancelled"
)

var (
	// TurnsTotal counts completed turns by intent and outcome.
	TurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devonn",
		Name:      "chat_turns_total",
		Help:      "Total number of conversation turns, by intent and outcome.",
	}, []string{"intent", "outcome"})

	// TurnsRejectedTotal counts messages refused before a turn started.
	TurnsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devonn",
		Name:      "chat_turns_rejected_total",
		Help:      "Total number of rejected messages, by reason.",
	}, []string{"reason"})

	// TurnPipelineSeconds measures the pipeline after the thinking delay.
	TurnPipelineSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "devonn",
		Name:      "chat_turn_pipeline_seconds",
		Help:      "Time spent classifying and generating a reply.",
		Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	// FeedbackTotal counts feedback by value.
	FeedbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devonn",
		Name:      "chat_feedback_total",
		Help:      "Total number of feedback submissions, by value.",
	}, []string{"value"})

	// ConnectedClients tracks open websocket connections on this instance.
	ConnectedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "devonn",
		Name:      "ws_connected_clients",
		Help:      "Current number of connected websocket clients.",
	})
)

func ObserveTurn(intent, outcome string, pipeline time.Duration) {
	TurnsTotal.WithLabelValues(intent, outcome).Inc()
	if outcome != OutcomeCancelled {
		TurnPipelineSeconds.Observe(pipeline.Seconds())
	}
}

func ObserveRejected(reason string) {
	TurnsRejectedTotal.WithLabelValues(reason).Inc()
}

func ObserveFeedback(value string) {
	FeedbackTotal.WithLabelValues(value).Inc()
}
