package service

import (
	"context"

	"devonn-assistant-be/internal/dto"
	"devonn-assistant-be/internal/entity"
	"devonn-assistant-be/internal/repository/contract"
	"devonn-assistant-be/internal/repository/specification"

	"github.com/gofiber/fiber/v2"
)

const defaultTurnPageSize = 50

type IAnalyticsService interface {
	ListTurns(ctx context.Context, query *dto.ListTurnsQuery) (*dto.ListTurnsResponse, error)
}

type analyticsService struct {
	turns contract.TurnRecordRepository
}

// NewAnalyticsService serves recorded turns. turns is nil when no database
// is configured.
func NewAnalyticsService(turns contract.TurnRecordRepository) IAnalyticsService {
	return &analyticsService{turns: turns}
}

func (s *analyticsService) ListTurns(ctx context.Context, query *dto.ListTurnsQuery) (*dto.ListTurnsResponse, error) {
	if s.turns == nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "turn analytics disabled")
	}

	var filters []specification.Specification
	if query.Intent != "" {
		filters = append(filters, specification.ByIntent{Intent: query.Intent})
	}
	if query.Feedback != "" {
		filters = append(filters, specification.ByFeedback{Feedback: query.Feedback})
	}
	if query.Fallback != "" {
		filters = append(filters, specification.ByFallback{Fallback: query.Fallback == "true"})
	}

	total, err := s.turns.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit == 0 {
		limit = defaultTurnPageSize
	}
	specs := append(filters,
		specification.Newest(),
		specification.Pagination{Limit: limit, Offset: query.Offset},
	)
	records, err := s.turns.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := &dto.ListTurnsResponse{
		Turns: make([]dto.TurnRecordResponse, 0, len(records)),
		Total: total,
	}
	for _, r := range records {
		res.Turns = append(res.Turns, toTurnRecordResponse(r))
	}
	return res, nil
}

func toTurnRecordResponse(r *entity.TurnRecord) dto.TurnRecordResponse {
	return dto.TurnRecordResponse{
		Id:             r.Id,
		ReplyMessageId: r.ReplyMessageId,
		Intent:         r.Intent,
		Confidence:     r.Confidence,
		Sentiment:      r.Sentiment,
		Entities:       r.Entities,
		Fallback:       r.Fallback,
		LowConfidence:  r.LowConfidence,
		FromVoice:      r.FromVoice,
		DurationMs:     r.DurationMs,
		Feedback:       r.Feedback,
		CreatedAt:      r.CreatedAt,
	}
}
