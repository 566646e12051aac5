package contract

import (
	"context"

	"devonn-assistant-be/internal/entity"
	"devonn-assistant-be/internal/repository/specification"
)

type TurnRecordRepository interface {
	Create(ctx context.Context, record *entity.TurnRecord) error
	// UpdateFeedback sets the feedback of the turn that produced the reply.
	// It reports false when no such turn was recorded.
	UpdateFeedback(ctx context.Context, replyMessageID, feedback string) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TurnRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TurnRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
