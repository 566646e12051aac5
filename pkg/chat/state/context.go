package state

import (
	"devonn-assistant-be/pkg/nlu/entity"
	"devonn-assistant-be/pkg/nlu/sentiment"
)

// MaxTopicHistory bounds the number of recent intents kept for biasing.
const MaxTopicHistory = 5

// Context is the memory carried between turns of a conversation.
// Values are copied by Clone before a turn mutates them, so a committed
// Context is never shared with an in-flight one.
type Context struct {
	LastIntent        string                   `json:"last_intent,omitempty"`
	MessageCount      int                      `json:"message_count"`
	TopicHistory      []string                 `json:"topic_history"`
	MentionedEntities map[entity.Type][]string `json:"mentioned_entities"`
	FailedIntentCount int                      `json:"failed_intent_count"`
	LastUserSentiment sentiment.Sentiment      `json:"last_user_sentiment,omitempty"`
}

func New() Context {
	return Context{
		TopicHistory:      []string{},
		MentionedEntities: map[entity.Type][]string{},
	}
}

func (c Context) Clone() Context {
	out := c
	out.TopicHistory = append([]string{}, c.TopicHistory...)
	out.MentionedEntities = make(map[entity.Type][]string, len(c.MentionedEntities))
	for k, v := range c.MentionedEntities {
		out.MentionedEntities[k] = append([]string{}, v...)
	}
	return out
}

// HasTopic reports whether intent appears in the topic history.
func (c Context) HasTopic(intent string) bool {
	for _, t := range c.TopicHistory {
		if t == intent {
			return true
		}
	}
	return false
}

// RecordTopic appends intent to the history unless it is already present,
// evicting the oldest entry once the history is full.
func (c *Context) RecordTopic(intent string) {
	if c.HasTopic(intent) {
		return
	}
	c.TopicHistory = append(c.TopicHistory, intent)
	if len(c.TopicHistory) > MaxTopicHistory {
		c.TopicHistory = c.TopicHistory[len(c.TopicHistory)-MaxTopicHistory:]
	}
}

// MergeEntities adds unseen entity values under their type.
func (c *Context) MergeEntities(found []entity.Entity) {
	if c.MentionedEntities == nil {
		c.MentionedEntities = map[entity.Type][]string{}
	}
	for _, e := range found {
		if !contains(c.MentionedEntities[e.Type], e.Value) {
			c.MentionedEntities[e.Type] = append(c.MentionedEntities[e.Type], e.Value)
		}
	}
}

// Mentioned returns the values seen so far for the given type.
func (c Context) Mentioned(kind entity.Type) []string {
	return c.MentionedEntities[kind]
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
