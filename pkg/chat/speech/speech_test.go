package speech

import (
	"context"
	"errors"
	"sync"
	"testing"

	"devonn-assistant-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeRecognizer struct {
	transcripts chan string
	errs        chan string
	startErr    error
	stopped     bool
}

func newFakeRecognizer() *fakeRecognizer {
	return &fakeRecognizer{transcripts: make(chan string, 4), errs: make(chan string, 4)}
}

func (f *fakeRecognizer) Start(context.Context) error { return f.startErr }
func (f *fakeRecognizer) Stop() { f.stopped = true }
func (f *fakeRecognizer) Transcripts() <-chan string { return f.transcripts }
func (f *fakeRecognizer) Errors() <-chan string { return f.errs }

type recordingSubmitter struct {
	mu       sync.Mutex
	texts    []string
	failures []string
	err      error
}

func (r *recordingSubmitter) SubmitVoice(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	return r.err
}

func (r *recordingSubmitter) ReportRecognitionError(_ context.Context, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, reason)
}

func TestBridgeForwardsUntilClosed(t *testing.T) {
	rec := newFakeRecognizer()
	sub := &recordingSubmitter{err: errors.New("busy")}

	rec.transcripts <- "deploy to aws"
	rec.transcripts <- "status"
	rec.errs <- "no-speech"
	close(rec.transcripts)
	close(rec.errs)

	err := NewBridge(rec, sub, logger.NewNopLogger()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"deploy to aws", "status"}, sub.texts)
	assert.Equal(t, []string{"no-speech"}, sub.failures)
	assert.True(t, rec.stopped)
}

func TestBridgeStopsOnContext(t *testing.T) {
	rec := newFakeRecognizer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewBridge(rec, &recordingSubmitter{}, logger.NewNopLogger()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, rec.stopped)
}

func TestBridgeStartFailure(t *testing.T) {
	rec := newFakeRecognizer()
	rec.startErr = errors.New("no microphone")

	err := NewBridge(rec, &recordingSubmitter{}, logger.NewNopLogger()).Run(context.Background())
	assert.EqualError(t, err, "no microphone")
	assert.False(t, rec.stopped)
}
