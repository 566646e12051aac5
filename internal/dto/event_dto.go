package dto

import "devonn-assistant-be/internal/entity"

// TurnCompletedPayload is the data of a TURN_COMPLETED event.
type TurnCompletedPayload struct {
	TurnId         string              `json:"turn_id"`
	UserMessageId  string              `json:"user_message_id"`
	ReplyMessageId string              `json:"reply_message_id"`
	Intent         string              `json:"intent"`
	Confidence     float64             `json:"confidence"`
	Sentiment      string              `json:"sentiment"`
	Entities       []entity.TurnEntity `json:"entities"`
	Fallback       bool                `json:"fallback"`
	LowConfidence  bool                `json:"low_confidence"`
	FromVoice      bool                `json:"from_voice"`
	DurationMs     int64               `json:"duration_ms"`
}

type FeedbackReceivedPayload struct {
	MessageId string `json:"message_id"`
	Feedback  string `json:"feedback"`
}
