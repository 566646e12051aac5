package dto

import (
	"devonn-assistant-be/pkg/chat/message"
	"devonn-assistant-be/pkg/chat/state"
	"devonn-assistant-be/pkg/nlu/intent"
)

type SendMessageRequest struct {
	Text      string `json:"text" validate:"required,max=2000"`
	FromVoice bool   `json:"from_voice"`
	Speak     bool   `json:"speak"`
}

type SendMessageResponse struct {
	TurnId        string          `json:"turn_id"`
	UserMessage   message.Message `json:"user_message"`
	Reply         message.Message `json:"reply"`
	Intent        intent.Intent   `json:"intent"`
	Fallback      bool            `json:"fallback"`
	LowConfidence bool            `json:"low_confidence"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required,oneof=positive negative"`
}

type ChatStatusResponse struct {
	IsProcessing bool          `json:"is_processing"`
	MessageCount int           `json:"message_count"`
	Context      state.Context `json:"context"`
}

// Websocket frame actions
const (
	FrameSendMessage = "send_message"
	FrameFeedback    = "feedback"
	FramePressButton = "press_button"
	FrameClear       = "clear"
)

// InboundFrame is a client command received over the chat websocket.
type InboundFrame struct {
	Action    string `json:"action" validate:"required,oneof=send_message feedback press_button clear"`
	Text      string `json:"text,omitempty"`
	FromVoice bool   `json:"from_voice,omitempty"`
	MessageId string `json:"message_id,omitempty"`
	ButtonId  string `json:"button_id,omitempty"`
	Feedback  string `json:"feedback,omitempty"`
}

// FrameReply answers a single InboundFrame on the sending socket only.
// Conversation updates reach every socket as event envelopes.
type FrameReply struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Error  string `json:"error,omitempty"`
	TurnId string `json:"turn_id,omitempty"`
}
