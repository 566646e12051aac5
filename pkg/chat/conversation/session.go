package conversation

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"devonn-assistant-be/internal/pkg/logger"
	"devonn-assistant-be/internal/pkg/metrics"
	"devonn-assistant-be/pkg/chat/message"
	"devonn-assistant-be/pkg/chat/response"
	"devonn-assistant-be/pkg/chat/speech"
	"devonn-assistant-be/pkg/chat/state"
	"devonn-assistant-be/pkg/events"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultGreeting = "Hello! I'm your AI assistant. How can I help you today?"
	FollowUpText    = "I'm sorry my response wasn't helpful. Could you explain what you're looking for in more detail?"
	speechErrorText = "Speech recognition error: "
)

type Config struct {
	Greeting string
	// The thinking delay is drawn uniformly from [ThinkingMin, ThinkingMax].
	ThinkingMin time.Duration
	ThinkingMax time.Duration
	// FollowUpDelay is the pause before answering negative feedback.
	FollowUpDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Greeting:      DefaultGreeting,
		ThinkingMin:   1200 * time.Millisecond,
		ThinkingMax:   2000 * time.Millisecond,
		FollowUpDelay: time.Second,
	}
}

// Options carries the optional collaborators of a Session.
type Options struct {
	Snapshots SnapshotSource
	Processes ProcessRegistry
	Events    EventPublisher
	Speaker   speech.Synthesizer
	Logger    logger.ILogger
	Clock     func() time.Time
	// Jitter returns a value in [0, 1) used to spread the thinking delay.
	Jitter func() float64
}

// Session is a single conversation. Turns are serialized: a message sent
// while another turn is in flight is rejected with ErrBusy.
type Session struct {
	pipeline Pipeline
	cfg      Config
	factory  *message.Factory

	snapshots SnapshotSource
	processes ProcessRegistry
	publisher EventPublisher
	speaker   speech.Synthesizer
	logger    logger.ILogger
	jitter    func() float64
	tracer    trace.Tracer

	mu           sync.Mutex
	messages     []message.Message
	convo        state.Context
	current      *Turn
	followUps    map[uint64]*time.Timer
	nextFollowUp uint64
	closed       bool
}

func NewSession(p Pipeline, cfg Config, opts Options) *Session {
	if cfg.Greeting == "" {
		cfg.Greeting = DefaultGreeting
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}
	if opts.Snapshots == nil {
		opts.Snapshots = ProviderSnapshot{}
	}
	if opts.Jitter == nil {
		opts.Jitter = rand.Float64
	}

	s := &Session{
		pipeline:  p,
		cfg:       cfg,
		factory:   message.NewFactory(opts.Clock),
		snapshots: opts.Snapshots,
		processes: opts.Processes,
		publisher: opts.Events,
		speaker:   opts.Speaker,
		logger:    opts.Logger,
		jitter:    opts.Jitter,
		tracer:    otel.Tracer("devonn-assistant-be/conversation"),
		convo:     state.New(),
		followUps: map[uint64]*time.Timer{},
	}
	s.messages = []message.Message{s.factory.CreateAgentText(cfg.Greeting)}
	return s
}

func (s *Session) thinkingDelay() time.Duration {
	lo, hi := s.cfg.ThinkingMin, s.cfg.ThinkingMax
	if lo < 0 {
		lo = 0
	}
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.jitter()*float64(hi-lo))
}

// SendMessage appends the user's message and schedules the reply after the
// thinking delay. The returned Turn settles when the reply is committed.
func (s *Session) SendMessage(ctx context.Context, text string, opts SendOptions) (*Turn, error) {
	if strings.TrimSpace(text) == "" {
		metrics.ObserveRejected("empty")
		return nil, ErrEmptyMessage
	}
	mood := s.pipeline.Analyzer.Analyze(text)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	if s.current != nil {
		s.mu.Unlock()
		metrics.ObserveRejected("busy")
		return nil, ErrBusy
	}

	userMsg := s.factory.CreateUserMessage(text, opts.FromVoice, mood)
	s.messages = append(s.messages, userMsg)

	t := &Turn{
		ID:          uuid.NewString(),
		UserMessage: userMsg,
		session:     s,
		text:        text,
		opts:        opts,
		traceCtx:    context.WithoutCancel(ctx),
		queuedAt:    time.Now(),
		done:        make(chan struct{}),
	}
	s.current = t
	t.timer = time.AfterFunc(s.thinkingDelay(), func() { s.runTurn(t) })
	s.mu.Unlock()

	s.emit(ctx, events.New(events.TypeMessageAppended, map[string]interface{}{"message": userMsg}))
	return t, nil
}

func (s *Session) runTurn(t *Turn) {
	ctx, span := s.tracer.Start(t.traceCtx, "conversation.turn", trace.WithAttributes(
		attribute.String("turn.id", t.ID),
		attribute.Bool("turn.from_voice", t.opts.FromVoice),
	))
	defer span.End()

	s.mu.Lock()
	if t.state != turnPending {
		s.mu.Unlock()
		span.SetAttributes(attribute.Bool("turn.cancelled", true))
		return
	}
	t.state = turnRunning

	started := time.Now()
	res, next := s.process(t)

	s.messages = append(s.messages, res.Reply)
	s.convo = next
	s.current = nil
	t.state = turnDone
	s.mu.Unlock()
	elapsed := time.Since(started)

	span.SetAttributes(
		attribute.String("intent.type", res.Intent.Type),
		attribute.Float64("intent.confidence", res.Intent.Confidence),
		attribute.Bool("reply.fallback", res.Fallback),
	)

	outcome := metrics.OutcomeAnswered
	if res.Fallback {
		outcome = metrics.OutcomeFallback
	}
	metrics.ObserveTurn(res.Intent.Type, outcome, elapsed)

	s.logger.Info("CHAT", "Turn completed", map[string]interface{}{
		"turn_id":    t.ID,
		"intent":     res.Intent.Type,
		"confidence": res.Intent.Confidence,
		"fallback":   res.Fallback,
		"waited_ms":  time.Since(t.queuedAt).Milliseconds(),
	})

	s.emit(ctx, events.New(events.TypeMessageAppended, map[string]interface{}{"message": res.Reply}))
	s.emit(ctx, events.New(events.TypeTurnCompleted, map[string]interface{}{
		"turn_id":          t.ID,
		"user_message_id":  t.UserMessage.ID,
		"reply_message_id": res.Reply.ID,
		"intent":           res.Intent.Type,
		"confidence":       res.Intent.Confidence,
		"sentiment":        t.UserMessage.Sentiment,
		"entities":         res.Intent.Entities,
		"fallback":         res.Fallback,
		"low_confidence":   res.LowConfidence,
		"from_voice":       t.opts.FromVoice,
		"duration_ms":      elapsed.Milliseconds(),
	}))

	t.settle(res, nil)

	if t.opts.Speak && s.speaker != nil {
		if err := s.speaker.Speak(ctx, res.Reply.Content); err != nil {
			s.logger.Warn("CHAT", "Failed to speak reply", map[string]interface{}{"error": err.Error()})
		}
	}
}

// process runs the stateless stages against the committed context. Callers
// hold s.mu.
func (s *Session) process(t *Turn) (Result, state.Context) {
	p := s.pipeline
	entities := p.Extractor.Extract(t.text)
	in, next := p.Classifier.Classify(t.text, entities, t.UserMessage.Sentiment, s.convo)

	draft := p.Generator.Generate(response.Request{
		Intent:    in,
		Utterance: t.text,
		Context:   next,
		Snapshot:  s.snapshots.Snapshot(),
	})
	if strings.Contains(draft.Content, response.ProcessCountPlaceholder) {
		draft.Content = strings.ReplaceAll(draft.Content, response.ProcessCountPlaceholder, processCount(s.processes))
	}
	for i := range draft.Buttons {
		s.bind(&draft.Buttons[i])
	}

	return Result{
		Reply:         s.factory.CreateAgentMessage(draft),
		Intent:        in,
		Fallback:      draft.Fallback,
		LowConfidence: p.Classifier.IsLowConfidence(in),
	}, next
}

func (s *Session) bind(b *message.Button) {
	switch b.Action.Kind {
	case message.ActionNotify:
		notice := b.Action.Notice
		b.Bind(func() error {
			s.notify(context.Background(), notice)
			return nil
		})
	default:
		label := b.Label
		b.Bind(func() error {
			_, err := s.SendMessage(context.Background(), label, SendOptions{})
			return err
		})
	}
}

func (s *Session) cancelLocked(t *Turn) bool {
	if t == nil || t.state != turnPending {
		return false
	}
	t.timer.Stop()
	t.state = turnCancelled
	if s.current == t {
		s.current = nil
	}
	return true
}

// PressButton runs the action bound to a button on a logged message.
func (s *Session) PressButton(messageID, buttonID string) error {
	s.mu.Lock()
	idx := s.indexLocked(messageID)
	if idx < 0 {
		s.mu.Unlock()
		return ErrMessageNotFound
	}
	b, ok := s.messages[idx].Button(buttonID)
	s.mu.Unlock()
	if !ok {
		return ErrButtonNotFound
	}

	s.logger.Debug("CHAT", "Button pressed", map[string]interface{}{"message_id": messageID, "button": b.Label})
	return b.Press()
}

// ProvideFeedback records feedback on a message once. Unknown ids and
// repeated feedback are ignored. Negative feedback schedules a follow-up.
func (s *Session) ProvideFeedback(ctx context.Context, messageID string, value message.Feedback) error {
	if !value.Valid() {
		return ErrInvalidFeedback
	}

	s.mu.Lock()
	idx := s.indexLocked(messageID)
	if idx < 0 || s.messages[idx].Feedback != message.FeedbackNone {
		s.mu.Unlock()
		return nil
	}
	s.messages[idx].Feedback = value
	if value == message.FeedbackNegative && !s.closed {
		s.nextFollowUp++
		id := s.nextFollowUp
		s.followUps[id] = time.AfterFunc(s.cfg.FollowUpDelay, func() { s.followUp(id) })
	}
	s.mu.Unlock()

	metrics.ObserveFeedback(string(value))
	s.emit(ctx, events.New(events.TypeFeedbackReceived, map[string]interface{}{
		"message_id": messageID,
		"feedback":   value,
	}))
	return nil
}

func (s *Session) followUp(id uint64) {
	s.mu.Lock()
	if _, ok := s.followUps[id]; !ok || s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.followUps, id)
	msg := s.factory.CreateAgentText(FollowUpText)
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	s.emit(context.Background(), events.New(events.TypeMessageAppended, map[string]interface{}{"message": msg}))
}

func (s *Session) stopFollowUpsLocked() {
	for id, timer := range s.followUps {
		timer.Stop()
		delete(s.followUps, id)
	}
}

// ClearConversation drops everything but the greeting and resets the
// conversation memory. A turn still thinking is cancelled.
func (s *Session) ClearConversation(ctx context.Context) {
	s.mu.Lock()
	pending := s.current
	cancelled := s.cancelLocked(pending)
	s.stopFollowUpsLocked()
	s.messages = []message.Message{s.messages[0]}
	s.convo = state.New()
	s.mu.Unlock()

	if cancelled {
		pending.settle(Result{}, ErrTurnCancelled)
		metrics.ObserveTurn("none", metrics.OutcomeCancelled, 0)
	}
	s.logger.Info("CHAT", "Conversation cleared", nil)
	s.emit(ctx, events.New(events.TypeConversationCleared, nil))
}

// SubmitVoice sends transcribed speech and reads the reply aloud.
func (s *Session) SubmitVoice(ctx context.Context, text string) error {
	_, err := s.SendMessage(ctx, text, SendOptions{FromVoice: true, Speak: true})
	return err
}

func (s *Session) ReportRecognitionError(ctx context.Context, reason string) {
	s.logger.Warn("CHAT", "Speech recognition failed", map[string]interface{}{"reason": reason})
	s.notify(ctx, speechErrorText+reason)
}

func (s *Session) StopSpeaking() {
	if s.speaker != nil {
		s.speaker.Cancel()
	}
}

func (s *Session) notify(ctx context.Context, notice string) {
	s.emit(ctx, events.New(events.TypeNotice, map[string]interface{}{"notice": notice}))
}

func (s *Session) Messages() []message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]message.Message, len(s.messages))
	for i, m := range s.messages {
		out[i] = m.Clone()
	}
	return out
}

// Context returns a copy of the committed conversation memory.
func (s *Session) Context() state.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.convo.Clone()
}

func (s *Session) IsProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Close cancels pending work. Further messages are rejected with ErrClosed.
func (s *Session) Close() {
	s.mu.Lock()
	pending := s.current
	cancelled := s.cancelLocked(pending)
	s.stopFollowUpsLocked()
	s.closed = true
	s.mu.Unlock()

	if cancelled {
		pending.settle(Result{}, ErrTurnCancelled)
	}
	s.StopSpeaking()
}

func (s *Session) indexLocked(messageID string) int {
	for i := range s.messages {
		if s.messages[i].ID == messageID {
			return i
		}
	}
	return -1
}

func (s *Session) emit(ctx context.Context, evt events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Error("CHAT", "Failed to publish "+evt.EventType()+" event", map[string]interface{}{"error": err.Error()})
	}
}
