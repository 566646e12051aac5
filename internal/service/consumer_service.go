package service

import (
	"context"

	"devonn-assistant-be/internal/dto"
	"devonn-assistant-be/internal/entity"
	"devonn-assistant-be/internal/pkg/logger"
	"devonn-assistant-be/internal/repository/contract"
	"devonn-assistant-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// Broadcaster pushes a raw envelope to every connected websocket client.
type Broadcaster interface {
	Broadcast(ctx context.Context, data []byte)
}

// EventExporter forwards events outside the process.
type EventExporter interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	hub        Broadcaster
	exporter   EventExporter
	turns      contract.TurnRecordRepository
	logger     logger.ILogger
}

// NewConsumerService fans bus events out to the hub, the exporter and the
// analytics store. Any of the three may be nil.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	hub Broadcaster,
	exporter EventExporter,
	turns contract.TurnRecordRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		hub:        hub,
		exporter:   exporter,
		turns:      turns,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks. gochannel redelivers nacked messages
// immediately, so a failing sink would spin instead of recovering.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	env, err := events.Unmarshal(msg.Payload)
	if err != nil {
		cs.logger.Error("CONSUMER", "Dropping malformed event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	if cs.hub != nil {
		cs.hub.Broadcast(ctx, msg.Payload)
	}

	if cs.exporter != nil {
		if evt, err := env.Event(); err == nil {
			if err := cs.exporter.Publish(ctx, evt); err != nil {
				cs.logger.Warn("CONSUMER", "Failed to export event", map[string]interface{}{
					"type":  env.Type,
					"error": err.Error(),
				})
			}
		}
	}

	if cs.turns == nil {
		return
	}
	switch env.Type {
	case events.TypeTurnCompleted:
		cs.recordTurn(ctx, env)
	case events.TypeFeedbackReceived:
		cs.recordFeedback(ctx, env)
	}
}

func (cs *consumerService) recordTurn(ctx context.Context, env events.Envelope) {
	var payload dto.TurnCompletedPayload
	if err := env.Decode(&payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to decode turn payload", map[string]interface{}{"error": err.Error()})
		return
	}

	id, err := uuid.Parse(payload.TurnId)
	if err != nil {
		id = uuid.New()
	}

	record := &entity.TurnRecord{
		Id:             id,
		UserMessageId:  payload.UserMessageId,
		ReplyMessageId: payload.ReplyMessageId,
		Intent:         payload.Intent,
		Confidence:     payload.Confidence,
		Sentiment:      payload.Sentiment,
		Entities:       payload.Entities,
		Fallback:       payload.Fallback,
		LowConfidence:  payload.LowConfidence,
		FromVoice:      payload.FromVoice,
		DurationMs:     payload.DurationMs,
		CreatedAt:      env.OccurredAt,
	}
	if err := cs.turns.Create(ctx, record); err != nil {
		cs.logger.Error("CONSUMER", "Failed to record turn", map[string]interface{}{
			"turn_id": payload.TurnId,
			"error":   err.Error(),
		})
	}
}

func (cs *consumerService) recordFeedback(ctx context.Context, env events.Envelope) {
	var payload dto.FeedbackReceivedPayload
	if err := env.Decode(&payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to decode feedback payload", map[string]interface{}{"error": err.Error()})
		return
	}

	ok, err := cs.turns.UpdateFeedback(ctx, payload.MessageId, payload.Feedback)
	if err != nil {
		cs.logger.Error("CONSUMER", "Failed to record feedback", map[string]interface{}{
			"message_id": payload.MessageId,
			"error":      err.Error(),
		})
		return
	}
	if !ok {
		// Greeting and follow-up messages have no turn.
		cs.logger.Debug("CONSUMER", "Feedback on a message without a turn", map[string]interface{}{"message_id": payload.MessageId})
	}
}
