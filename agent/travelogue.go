package agent

import (
	"context"
	"fmt"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/model"
)

// TravelogueAgent writes an engaging travelogue for a destination.
type TravelogueAgent struct {
	Base
}

// NewTravelogueAgent constructs the agent and registers it.
func NewTravelogueAgent(gen model.Generator, registry *a2a.Registry, optFns ...func(o *BaseConfig)) *TravelogueAgent {
	cfg := BaseConfig{
		ID:          "travelogue_agent",
		Name:        "travelogue",
		DisplayName: "TravelogueAgent",
		Description: "Generates engaging travelogues for a destination",
		Capabilities: []a2a.Capability{{
			Name:        "generate_travelogue",
			Description: "Write a travelogue from destination, duration and interests",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"destination": map[string]any{"type": "string"},
					"duration":    map[string]any{"type": "string"},
					"interests":   map[string]any{"type": "array"},
				},
				"required": []string{"destination", "duration", "interests"},
			},
			OutputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"travelogue": map[string]any{"type": "string"},
				},
			},
			EstimatedDuration: 15,
		}},
		Generator: gen,
		Registry:  registry,
	}
	for _, fn := range optFns {
		fn(&cfg)
	}
	return &TravelogueAgent{Base: NewBase(cfg)}
}

// Execute implements Agent.
func (a *TravelogueAgent) Execute(ctx context.Context, input core.Input) core.Result {
	if err := a.Validate(input, "destination", "duration", "interests"); err != nil {
		return err.ToResult()
	}

	destination := input.String("destination", "")
	duration := input.String("duration", "")
	interests := input.StringSlice("interests")
	travelStyle := input.String("travel_style", "")

	prompt := fmt.Sprintf(`Write an engaging travelogue for a visitor spending %s in %s.
The visitor's interests are: %s
Travel style: %s

The travelogue should cover:
1. Daily highlights and pacing
2. Sights worth seeing and what the visit feels like
3. Food worth seeking out
4. Where to stay
5. Getting around
6. Practical tips
7. Personal impressions and advice

Use vivid, concrete language that puts the reader on the ground.`,
		duration, destination, joinList(interests), travelStyle)

	travelogue, err := a.Generate(ctx, prompt)
	if err != nil {
		return core.NewCollaboratorError(err).ToResult()
	}

	return core.Success("travelogue generated", map[string]any{
		"destination":  destination,
		"duration":     duration,
		"interests":    interests,
		"travel_style": travelStyle,
		"travelogue":   travelogue,
	})
}
