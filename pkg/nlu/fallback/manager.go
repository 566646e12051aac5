package fallback

// Strategy decides when clarification prompts replace normal replies.
type Strategy struct {
	Threshold int
	Responses []string
}

func DefaultStrategy() Strategy {
	return Strategy{
		Threshold: 2,
		Responses: []string{
			"I'm not sure I understand. Could you rephrase that?",
			"I'm having trouble understanding your request. Could you try explaining it differently?",
			"I don't quite follow. Would you mind clarifying what you're looking for?",
			"Let me try to help better. What specific information or assistance do you need?",
			"I apologize, but I'm not understanding correctly. Could you be more specific?",
		},
	}
}

// Response picks the clarification prompt for failedCount consecutive
// low-confidence turns. Once the threshold is reached the prompts cycle.
func Response(failedCount int, s Strategy) (string, bool) {
	if len(s.Responses) == 0 || failedCount < s.Threshold {
		return "", false
	}
	return s.Responses[(failedCount-s.Threshold)%len(s.Responses)], true
}

type Manager struct {
	strategy Strategy
}

func NewManager(s Strategy) *Manager {
	return &Manager{strategy: s}
}

func (m *Manager) Get(failedCount int) (string, bool) {
	return Response(failedCount, m.strategy)
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}
