package message

import (
	"errors"
	"time"

	"devonn-assistant-be/pkg/nlu/sentiment"
)

type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

type Kind string

const (
	KindText    Kind = "text"
	KindButtons Kind = "buttons"
	KindLinks   Kind = "links"
	KindImage   Kind = "image"
)

type Feedback string

const (
	FeedbackNone     Feedback = ""
	FeedbackPositive Feedback = "positive"
	FeedbackNegative Feedback = "negative"
)

func (f Feedback) Valid() bool {
	return f == FeedbackPositive || f == FeedbackNegative
}

// ActionKind tags what pressing a button should do once it is bound.
type ActionKind string

const (
	// ActionSubmitLabel re-submits the button label as a user utterance.
	ActionSubmitLabel ActionKind = "submit_label"
	// ActionNotify surfaces Notice to the user without starting a turn.
	ActionNotify ActionKind = "notify"
)

type PendingAction struct {
	Kind   ActionKind `json:"kind"`
	Notice string     `json:"notice,omitempty"`
}

var ErrUnboundButton = errors.New("button has no bound action")

type Button struct {
	ID     string        `json:"id"`
	Label  string        `json:"label"`
	Action PendingAction `json:"action"`

	handler func() error
}

// Bind attaches the callback run by Press.
func (b *Button) Bind(fn func() error) {
	b.handler = fn
}

func (b Button) Bound() bool {
	return b.handler != nil
}

func (b Button) Press() error {
	if b.handler == nil {
		return ErrUnboundButton
	}
	return b.handler()
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Message struct {
	ID        string              `json:"id"`
	Content   string              `json:"content"`
	Sender    Sender              `json:"sender"`
	Timestamp time.Time           `json:"timestamp"`
	Kind      Kind                `json:"type"`
	Buttons   []Button            `json:"buttons,omitempty"`
	Links     []Link              `json:"links,omitempty"`
	ImageURL  string              `json:"image_url,omitempty"`
	FromVoice bool                `json:"from_voice,omitempty"`
	Sentiment sentiment.Sentiment `json:"sentiment,omitempty"`
	Feedback  Feedback            `json:"feedback,omitempty"`
}

// Clone copies the attachment slices so callers cannot alter a logged message.
func (m Message) Clone() Message {
	out := m
	if m.Buttons != nil {
		out.Buttons = append([]Button(nil), m.Buttons...)
	}
	if m.Links != nil {
		out.Links = append([]Link(nil), m.Links...)
	}
	return out
}

func (m Message) Button(id string) (Button, bool) {
	for _, b := range m.Buttons {
		if b.ID == id {
			return b, true
		}
	}
	return Button{}, false
}

// Draft is a reply before it is given an identity and a timestamp.
type Draft struct {
	Content  string
	Kind     Kind
	Buttons  []Button
	Links    []Link
	ImageURL string
	// Fallback marks a clarification prompt chosen instead of a template.
	Fallback bool
}
