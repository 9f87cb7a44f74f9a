package pipeline

import "context"

// Verdict is the aggregate outcome for one message. Reasons lists the name of
// every filter that fired, in registration order, so the log can show all of
// them. However many filters fire, the message counts as one violation.
type Verdict struct {
	Violation bool
	Reasons   []string
}

type Manager struct {
	filters []Filter
}

func NewManager(filters ...Filter) *Manager {
	return &Manager{filters: filters}
}

// Process runs every filter and accumulates the ones that fired. A filter
// error is treated as "did not fire": classification fails open and never
// stops the bank.
func (m *Manager) Process(ctx context.Context, payload Payload) *Verdict {
	verdict := &Verdict{}
	for _, f := range m.filters {
		res, err := f.Process(ctx, payload)
		if err != nil || res == nil {
			continue
		}
		if res.Fired {
			verdict.Violation = true
			verdict.Reasons = append(verdict.Reasons, res.FilterName)
		}
	}
	return verdict
}
