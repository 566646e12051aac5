package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Envelope is the JSON form events travel in on every bus.
type Envelope struct {
	Type       string          `json:"type"`
	Data       json.RawMessage `json:"data"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func Marshal(e Event) ([]byte, error) {
	data, err := json.Marshal(e.Payload())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", e.EventType(), err)
	}
	return json.Marshal(Envelope{Type: e.EventType(), Data: data, OccurredAt: e.Timestamp()})
}

func Unmarshal(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("failed to unmarshal event envelope: %w", err)
	}
	if env.Type == "" {
		return Envelope{}, fmt.Errorf("event envelope has no type")
	}
	return env, nil
}

// Decode unpacks the payload into v.
func (e Envelope) Decode(v interface{}) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// Event rebuilds a generic event from the envelope.
func (e Envelope) Event() (BaseEvent, error) {
	data := map[string]interface{}{}
	if err := e.Decode(&data); err != nil {
		return BaseEvent{}, err
	}
	return BaseEvent{Type: e.Type, Data: data, OccurredAt: e.OccurredAt}, nil
}
