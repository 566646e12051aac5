package message

import (
	"time"

	"devonn-assistant-be/pkg/nlu/sentiment"

	"github.com/google/uuid"
)

// Factory stamps messages with identities and timestamps
type Factory struct {
	now func() time.Time
}

func NewFactory(now func() time.Time) *Factory {
	if now == nil {
		now = time.Now
	}
	return &Factory{now: now}
}

func (f *Factory) CreateUserMessage(text string, fromVoice bool, mood sentiment.Sentiment) Message {
	return Message{
		ID:        uuid.NewString(),
		Content:   text,
		Sender:    SenderUser,
		Timestamp: f.now(),
		Kind:      KindText,
		FromVoice: fromVoice,
		Sentiment: mood,
	}
}

func (f *Factory) CreateAgentMessage(d Draft) Message {
	kind := d.Kind
	if kind == "" {
		kind = KindText
	}
	return Message{
		ID:        uuid.NewString(),
		Content:   d.Content,
		Sender:    SenderAgent,
		Timestamp: f.now(),
		Kind:      kind,
		Buttons:   d.Buttons,
		Links:     d.Links,
		ImageURL:  d.ImageURL,
	}
}

// CreateAgentText is a shortcut for plain agent text.
func (f *Factory) CreateAgentText(content string) Message {
	return f.CreateAgentMessage(Draft{Content: content, Kind: KindText})
}
