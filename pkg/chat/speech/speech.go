// Package speech connects voice input and output to a conversation.
package speech

import (
	"context"

	"devonn-assistant-be/internal/pkg/logger"
)

// Recognizer turns audio into final transcripts. Both channels close when
// recognition stops.
type Recognizer interface {
	Start(ctx context.Context) error
	Stop()
	Transcripts() <-chan string
	Errors() <-chan string
}

// Synthesizer reads replies aloud.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
	Cancel()
}

// Submitter receives recognised speech.
type Submitter interface {
	SubmitVoice(ctx context.Context, text string) error
	ReportRecognitionError(ctx context.Context, reason string)
}

// Bridge forwards transcripts from a Recognizer to a Submitter.
type Bridge struct {
	recognizer Recognizer
	submitter  Submitter
	logger     logger.ILogger
}

func NewBridge(rec Recognizer, sub Submitter, log logger.ILogger) *Bridge {
	return &Bridge{recognizer: rec, submitter: sub, logger: log}
}

// Run blocks until ctx is done or the recognizer closes its channels.
func (b *Bridge) Run(ctx context.Context) error {
	if err := b.recognizer.Start(ctx); err != nil {
		return err
	}
	defer b.recognizer.Stop()

	transcripts, errs := b.recognizer.Transcripts(), b.recognizer.Errors()
	for transcripts != nil || errs != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text, ok := <-transcripts:
			if !ok {
				transcripts = nil
				continue
			}
			if err := b.submitter.SubmitVoice(ctx, text); err != nil {
				b.logger.Warn("SPEECH", "Transcript dropped", map[string]interface{}{"error": err.Error()})
			}
		case reason, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			b.submitter.ReportRecognitionError(ctx, reason)
		}
	}
	return nil
}
