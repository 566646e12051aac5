package service

import (
	"context"
	"errors"
	"testing"

	"devonn-assistant-be/internal/dto"
	"devonn-assistant-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsServiceDisabled(t *testing.T) {
	svc := NewAnalyticsService(nil)

	_, err := svc.ListTurns(context.Background(), &dto.ListTurnsQuery{})
	var fiberErr *fiber.Error
	require.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusServiceUnavailable, fiberErr.Code)
}

func TestAnalyticsServiceListTurns(t *testing.T) {
	repo := &memoryTurnRepo{}
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.TurnRecord{Id: uuid.New(), Intent: "status", Feedback: "positive"}))

	res, err := NewAnalyticsService(repo).ListTurns(ctx, &dto.ListTurnsQuery{Intent: "status", Fallback: "false"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Total)
	require.Len(t, res.Turns, 1)
	assert.Equal(t, "positive", res.Turns[0].Feedback)
}
