package entity

import (
	"time"

	"github.com/google/uuid"
)

type TurnEntity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type TurnRecord struct {
	Id             uuid.UUID
	UserMessageId  string
	ReplyMessageId string
	Intent         string
	Confidence     float64
	Sentiment      string
	Entities       []TurnEntity
	Fallback       bool
	LowConfidence  bool
	FromVoice      bool
	DurationMs     int64
	Feedback       string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
