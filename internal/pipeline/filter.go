package pipeline

import (
	"context"
)

// Result is a single filter's decision for one message.
type Result struct {
	Fired      bool
	FilterName string
	Reason     string
}

// Filter is a pure predicate over the message view. Implementations must be
// side-effect free except for the duplicate filter, which owns its tracker.
type Filter interface {
	Name() string
	Process(ctx context.Context, payload Payload) (*Result, error)
}
