package dto

import (
	"time"

	"devonn-assistant-be/internal/entity"

	"github.com/google/uuid"
)

type ListTurnsQuery struct {
	Intent   string `query:"intent"`
	Feedback string `query:"feedback" validate:"omitempty,oneof=positive negative"`
	Fallback string `query:"fallback" validate:"omitempty,oneof=true false"`
	Limit    int    `query:"limit" validate:"gte=0,lte=200"`
	Offset   int    `query:"offset" validate:"gte=0"`
}

type TurnRecordResponse struct {
	Id             uuid.UUID           `json:"id"`
	ReplyMessageId string              `json:"reply_message_id"`
	Intent         string              `json:"intent"`
	Confidence     float64             `json:"confidence"`
	Sentiment      string              `json:"sentiment"`
	Entities       []entity.TurnEntity `json:"entities"`
	Fallback       bool                `json:"fallback"`
	LowConfidence  bool                `json:"low_confidence"`
	FromVoice      bool                `json:"from_voice"`
	DurationMs     int64               `json:"duration_ms"`
	Feedback       string              `json:"feedback,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

type ListTurnsResponse struct {
	Turns []TurnRecordResponse `json:"turns"`
	Total int64                `json:"total"`
}
