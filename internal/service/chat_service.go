package service

import (
	"context"
	"encoding/json"
	"errors"

	"devonn-assistant-be/internal/dto"
	"devonn-assistant-be/internal/pkg/logger"
	"devonn-assistant-be/internal/pkg/serverutils"
	"devonn-assistant-be/pkg/chat/conversation"
	"devonn-assistant-be/pkg/chat/message"

	"github.com/gofiber/fiber/v2"
)

type IChatService interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetMessages(ctx context.Context) []message.Message
	ProvideFeedback(ctx context.Context, messageId string, req *dto.FeedbackRequest) error
	PressButton(ctx context.Context, messageId, buttonId string) error
	Clear(ctx context.Context)
	Status(ctx context.Context) *dto.ChatStatusResponse
	HandleFrame(ctx context.Context, data []byte) dto.FrameReply
}

type chatService struct {
	session *conversation.Session
	logger  logger.ILogger
}

func NewChatService(session *conversation.Session, log logger.ILogger) IChatService {
	return &chatService{
		session: session,
		logger:  log,
	}
}

// SendMessage blocks until the reply is committed or ctx ends. A caller
// that gives up does not cancel the turn.
func (s *chatService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	turn, err := s.session.SendMessage(ctx, req.Text, conversation.SendOptions{
		FromVoice: req.FromVoice,
		Speak:     req.Speak,
	})
	if err != nil {
		return nil, toHTTPError(err)
	}

	res, err := turn.Wait(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &dto.SendMessageResponse{
		TurnId:        turn.ID,
		UserMessage:   turn.UserMessage,
		Reply:         res.Reply,
		Intent:        res.Intent,
		Fallback:      res.Fallback,
		LowConfidence: res.LowConfidence,
	}, nil
}

func (s *chatService) GetMessages(ctx context.Context) []message.Message {
	return s.session.Messages()
}

func (s *chatService) ProvideFeedback(ctx context.Context, messageId string, req *dto.FeedbackRequest) error {
	return toHTTPError(s.session.ProvideFeedback(ctx, messageId, message.Feedback(req.Feedback)))
}

func (s *chatService) PressButton(ctx context.Context, messageId, buttonId string) error {
	return toHTTPError(s.session.PressButton(messageId, buttonId))
}

func (s *chatService) Clear(ctx context.Context) {
	s.session.ClearConversation(ctx)
}

func (s *chatService) Status(ctx context.Context) *dto.ChatStatusResponse {
	convo := s.session.Context()
	return &dto.ChatStatusResponse{
		IsProcessing: s.session.IsProcessing(),
		MessageCount: convo.MessageCount,
		Context:      convo,
	}
}

// HandleFrame runs one websocket command. Sends are not awaited; the reply
// reaches the client as a MESSAGE_APPENDED event.
func (s *chatService) HandleFrame(ctx context.Context, data []byte) dto.FrameReply {
	var frame dto.InboundFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return dto.FrameReply{Type: "error", Error: "malformed frame"}
	}
	if err := serverutils.ValidateRequest(frame); err != nil {
		return dto.FrameReply{Type: "error", Action: frame.Action, Error: err.Error()}
	}

	reply := dto.FrameReply{Type: "ack", Action: frame.Action}
	var err error
	switch frame.Action {
	case dto.FrameSendMessage:
		var turn *conversation.Turn
		turn, err = s.session.SendMessage(ctx, frame.Text, conversation.SendOptions{FromVoice: frame.FromVoice})
		if err == nil {
			reply.TurnId = turn.ID
		}
	case dto.FrameFeedback:
		err = s.session.ProvideFeedback(ctx, frame.MessageId, message.Feedback(frame.Feedback))
	case dto.FramePressButton:
		err = s.session.PressButton(frame.MessageId, frame.ButtonId)
	case dto.FrameClear:
		s.session.ClearConversation(ctx)
	}

	if err != nil {
		s.logger.Debug("CHAT", "Frame rejected", map[string]interface{}{"action": frame.Action, "error": err.Error()})
		return dto.FrameReply{Type: "error", Action: frame.Action, Error: err.Error()}
	}
	return reply
}

func toHTTPError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, conversation.ErrEmptyMessage), errors.Is(err, conversation.ErrInvalidFeedback):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, conversation.ErrBusy), errors.Is(err, conversation.ErrTurnCancelled), errors.Is(err, message.ErrUnboundButton):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, conversation.ErrMessageNotFound), errors.Is(err, conversation.ErrButtonNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, conversation.ErrClosed):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fiber.NewError(fiber.StatusRequestTimeout, err.Error())
	}
	return err
}
