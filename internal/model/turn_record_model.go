package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TurnRecord is the analytics row written for every answered turn. It
// never holds message text.
type TurnRecord struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserMessageId  string         `gorm:"type:text;not null"`
	ReplyMessageId string         `gorm:"type:text;not null;uniqueIndex"`
	Intent         string         `gorm:"type:text;not null;index"`
	Confidence     float64        `gorm:"not null"`
	Sentiment      string         `gorm:"type:text;not null"`
	Entities       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Fallback       bool           `gorm:"not null;default:false;index"`
	LowConfidence  bool           `gorm:"not null;default:false"`
	FromVoice      bool           `gorm:"not null;default:false"`
	DurationMs     int64          `gorm:"not null;default:0"`
	Feedback       string         `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (TurnRecord) TableName() string {
	return "turn_records"
}
