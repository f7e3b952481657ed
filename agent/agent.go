package agent

import (
	"context"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
)

// Agent is the polymorphic unit of work. Implementations are constructed
// with a generator and a registry; construction is not side-effect-free — it
// registers the agent's capabilities so it is discoverable immediately.
type Agent interface {
	// ID is the stable registry identifier, unique per agent instance.
	ID() string
	// Name is the short dispatch key used by the Manager ("travelogue").
	Name() string
	// Description explains what the agent does.
	Description() string
	// Capabilities returns the declared capability descriptors.
	Capabilities() []a2a.Capability
	// Execute performs the agent's unit of work. Missing required input
	// fields yield a validation error result; collaborator faults yield a
	// collaborator error result. Execute never panics.
	Execute(ctx context.Context, input core.Input) core.Result
}
