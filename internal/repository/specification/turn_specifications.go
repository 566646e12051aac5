package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByIntent struct {
	Intent string
}

func (s ByIntent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("intent = ?", s.Intent)
}

type ByReplyMessageID struct {
	ID string
}

func (s ByReplyMessageID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reply_message_id = ?", s.ID)
}

type ByFallback struct {
	Fallback bool
}

func (s ByFallback) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("fallback = ?", s.Fallback)
}

type ByFeedback struct {
	Feedback string
}

func (s ByFeedback) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feedback = ?", s.Feedback)
}

// CreatedSince keeps rows created at or after Since.
type CreatedSince struct {
	Since time.Time
}

func (s CreatedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Since)
}
