package conversation

import (
	"context"
	"time"

	"devonn-assistant-be/internal/pkg/metrics"
	"devonn-assistant-be/pkg/chat/message"
	"devonn-assistant-be/pkg/nlu/intent"
)

type turnState int

const (
	turnPending turnState = iota
	turnRunning
	turnDone
	turnCancelled
)

type SendOptions struct {
	// FromVoice marks the utterance as transcribed speech.
	FromVoice bool
	// Speak reads the reply aloud when a synthesizer is configured.
	Speak bool
}

// Result is the outcome of a completed turn.
type Result struct {
	Reply         message.Message
	Intent        intent.Intent
	Fallback      bool
	LowConfidence bool
}

// Turn is one user utterance waiting for, or holding, its reply.
type Turn struct {
	ID          string
	UserMessage message.Message

	session  *Session
	text     string
	opts     SendOptions
	traceCtx context.Context
	queuedAt time.Time
	timer    *time.Timer

	// guarded by session.mu
	state turnState

	done   chan struct{}
	result Result
	err    error
}

// Done is closed once the turn completes or is cancelled.
func (t *Turn) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the turn settles or ctx ends. Giving up on ctx does not
// cancel the turn.
func (t *Turn) Wait(ctx context.Context) (Result, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Cancel aborts the turn while it is still thinking. It reports false once
// the pipeline has started, in which case the reply will still be committed.
func (t *Turn) Cancel() bool {
	s := t.session
	s.mu.Lock()
	ok := s.cancelLocked(t)
	s.mu.Unlock()

	if ok {
		t.settle(Result{}, ErrTurnCancelled)
		metrics.ObserveTurn("none", metrics.OutcomeCancelled, 0)
	}
	return ok
}

func (t *Turn) settle(res Result, err error) {
	t.result, t.err = res, err
	close(t.done)
}
