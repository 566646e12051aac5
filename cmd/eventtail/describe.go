package main

import (
	"fmt"
	"strings"

	"devonn-assistant-be/internal/dto"
	"devonn-assistant-be/pkg/events"

	"github.com/fatih/color"
)

const maxContent = 80

var (
	userColor     = color.New(color.FgGreen)
	agentColor    = color.New(color.FgCyan)
	turnColor     = color.New(color.FgBlue)
	fallbackColor = color.New(color.FgYellow)
	feedbackColor = color.New(color.FgMagenta)
	noticeColor   = color.New(color.FgRed)
	plainColor    = color.New(color.Reset)
)

type appendedMessage struct {
	Message struct {
		Sender  string `json:"sender"`
		Content string `json:"content"`
	} `json:"message"`
}

// describe renders an event as one line and picks its colour.
func describe(env events.Envelope) (string, *color.Color) {
	switch env.Type {
	case events.TypeMessageAppended:
		var p appendedMessage
		if err := env.Decode(&p); err != nil {
			return "undecodable message", noticeColor
		}
		c := agentColor
		if p.Message.Sender == "user" {
			c = userColor
		}
		return fmt.Sprintf("%s: %s", p.Message.Sender, truncate(p.Message.Content)), c

	case events.TypeTurnCompleted:
		var p dto.TurnCompletedPayload
		if err := env.Decode(&p); err != nil {
			return "undecodable turn", noticeColor
		}
		line := fmt.Sprintf("intent=%s confidence=%.2f sentiment=%s entities=%d %dms",
			p.Intent, p.Confidence, p.Sentiment, len(p.Entities), p.DurationMs)
		if p.Fallback {
			return line + " fallback", fallbackColor
		}
		return line, turnColor

	case events.TypeFeedbackReceived:
		var p dto.FeedbackReceivedPayload
		if err := env.Decode(&p); err != nil {
			return "undecodable feedback", noticeColor
		}
		return fmt.Sprintf("%s on %s", p.Feedback, p.MessageId), feedbackColor

	case events.TypeNotice:
		var p struct {
			Notice string `json:"notice"`
		}
		_ = env.Decode(&p)
		return p.Notice, noticeColor
	}
	return string(env.Data), plainColor
}

func truncate(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > maxContent {
		return string(r[:maxContent-3]) + "..."
	}
	return s
}
