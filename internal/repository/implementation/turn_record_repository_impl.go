package implementation

import (
	"context"
	"errors"

	"devonn-assistant-be/internal/entity"
	"devonn-assistant-be/internal/mapper"
	"devonn-assistant-be/internal/model"
	"devonn-assistant-be/internal/repository/contract"
	"devonn-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TurnRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TurnRecordMapper
}

func NewTurnRecordRepository(db *gorm.DB) contract.TurnRecordRepository {
	return &TurnRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewTurnRecordMapper(),
	}
}

func (r *TurnRecordRepositoryImpl) Create(ctx context.Context, record *entity.TurnRecord) error {
	m, err := r.mapper.ToModel(record)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *TurnRecordRepositoryImpl) UpdateFeedback(ctx context.Context, replyMessageID, feedback string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.TurnRecord{}).
		Where("reply_message_id = ?", replyMessageID).
		Update("feedback", feedback)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TurnRecordRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TurnRecord, error) {
	var m model.TurnRecord
	query := specification.Apply(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TurnRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TurnRecord, error) {
	var models []*model.TurnRecord
	query := specification.Apply(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.TurnRecord, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *TurnRecordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.TurnRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
