package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	evt := New(TypeFeedbackReceived, map[string]interface{}{"message_id": "m1", "feedback": "negative"})

	raw, err := Marshal(evt)
	require.NoError(t, err)

	env, err := Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, TypeFeedbackReceived, env.Type)
	assert.True(t, env.OccurredAt.Equal(evt.OccurredAt))

	var payload struct {
		MessageID string `json:"message_id"`
		Feedback  string `json:"feedback"`
	}
	require.NoError(t, env.Decode(&payload))
	assert.Equal(t, "m1", payload.MessageID)

	back, err := env.Event()
	require.NoError(t, err)
	assert.Equal(t, "negative", back.Payload()["feedback"])
}

func TestUnmarshalRejectsUntyped(t *testing.T) {
	_, err := Unmarshal([]byte(`{"data":{}}`))
	assert.Error(t, err)

	_, err = Unmarshal([]byte(`not json`))
	assert.Error(t, err)
}
