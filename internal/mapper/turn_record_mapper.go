package mapper

import (
	"encoding/json"
	"time"

	"devonn-assistant-be/internal/entity"
	"devonn-assistant-be/internal/model"

	"gorm.io/datatypes"
)

type TurnRecordMapper struct{}

func NewTurnRecordMapper() *TurnRecordMapper {
	return &TurnRecordMapper{}
}

func (m *TurnRecordMapper) ToEntity(r *model.TurnRecord) *entity.TurnRecord {
	if r == nil {
		return nil
	}

	entities := []entity.TurnEntity{}
	if len(r.Entities) > 0 {
		// A malformed column reads as no entities.
		if err := json.Unmarshal(r.Entities, &entities); err != nil {
			entities = []entity.TurnEntity{}
		}
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.TurnRecord{
		Id:             r.Id,
		UserMessageId:  r.UserMessageId,
		ReplyMessageId: r.ReplyMessageId,
		Intent:         r.Intent,
		Confidence:     r.Confidence,
		Sentiment:      r.Sentiment,
		Entities:       entities,
		Fallback:       r.Fallback,
		LowConfidence:  r.LowConfidence,
		FromVoice:      r.FromVoice,
		DurationMs:     r.DurationMs,
		Feedback:       r.Feedback,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *TurnRecordMapper) ToModel(r *entity.TurnRecord) (*model.TurnRecord, error) {
	if r == nil {
		return nil, nil
	}

	entities := r.Entities
	if entities == nil {
		entities = []entity.TurnEntity{}
	}
	raw, err := json.Marshal(entities)
	if err != nil {
		return nil, err
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.TurnRecord{
		Id:             r.Id,
		UserMessageId:  r.UserMessageId,
		ReplyMessageId: r.ReplyMessageId,
		Intent:         r.Intent,
		Confidence:     r.Confidence,
		Sentiment:      r.Sentiment,
		Entities:       datatypes.JSON(raw),
		Fallback:       r.Fallback,
		LowConfidence:  r.LowConfidence,
		FromVoice:      r.FromVoice,
		DurationMs:     r.DurationMs,
		Feedback:       r.Feedback,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      updatedAt,
	}, nil
}
