package agent

import (
	"context"
	"strings"
	"time"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/logging"
	"github.com/pumpkinkking/whereeatai/model"
)

// Base bundles the identity, validation and generation plumbing shared by
// every concrete agent. Embed it and supply an Execute method to satisfy the
// Agent interface.
type Base struct {
	id          string
	name        string
	displayName string
	description string
	caps        []a2a.Capability
	generator   model.Generator
	registry    *a2a.Registry
	logger      logging.Logger
}

// BaseConfig configures a Base.
type BaseConfig struct {
	// ID is the registry identifier ("travelogue_agent").
	ID string
	// Name is the Manager dispatch key ("travelogue").
	Name string
	// DisplayName is the human-readable name ("TravelogueAgent").
	DisplayName string
	// Description explains the agent's purpose.
	Description string
	// Capabilities are the declared capability descriptors.
	Capabilities []a2a.Capability
	// Generator is the external generation collaborator.
	Generator model.Generator
	// Registry receives the agent's registration at construction.
	Registry *a2a.Registry
	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// NewBase constructs a Base and registers it into the registry with status
// Active and zero load. Construction is deliberately not side-effect-free:
// an agent exists exactly when it is discoverable.
func NewBase(cfg BaseConfig) Base {
	b := Base{
		id:          cfg.ID,
		name:        cfg.Name,
		displayName: cfg.DisplayName,
		description: cfg.Description,
		caps:        cfg.Capabilities,
		generator:   cfg.Generator,
		registry:    cfg.Registry,
		logger:      logging.OrNoOp(cfg.Logger),
	}
	if b.registry != nil {
		_ = b.registry.Register(a2a.Registration{
			AgentID:       b.id,
			Name:          b.displayName,
			Description:   b.description,
			Capabilities:  b.caps,
			Status:        a2a.StatusActive,
			Load:          0,
			LastHeartbeat: time.Now(),
		})
	}
	return b
}

// ID returns the registry identifier.
func (b *Base) ID() string { return b.id }

// Name returns the Manager dispatch key.
func (b *Base) Name() string { return b.name }

// Description returns the agent description.
func (b *Base) Description() string { return b.description }

// Capabilities returns the declared capability descriptors.
func (b *Base) Capabilities() []a2a.Capability { return b.caps }

// Validate checks the required fields and returns a validation error naming
// exactly the missing ones, or nil when the input is complete.
func (b *Base) Validate(input core.Input, required ...string) *core.Error {
	var missing []string
	for _, field := range required {
		if !input.Has(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	b.logger.Warn("input validation failed", "agent", b.name, "missing", strings.Join(missing, ","))
	return core.NewValidationError(missing)
}

// Generate invokes the external generation collaborator. Transport and
// timeout faults come back as ordinary errors for the caller to convert.
func (b *Base) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := b.generator.Generate(ctx, model.Request{Prompt: prompt})
	b.logger.Debug("generation finished",
		"agent", b.name, "duration", time.Since(start), "success", err == nil)
	return text, err
}

// joinList renders an input list for prompt interpolation.
func joinList(items []string) string { return strings.Join(items, ", ") }
