package agent

import (
	"context"
	"fmt"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/model"
)

// TravelPlanAgent produces a complete single-shot travel plan covering food,
// lodging and routes. The multi-stage travel_plan workflow composes narrower
// agents instead; this agent serves callers that want one combined answer.
type TravelPlanAgent struct {
	Base
}

// NewTravelPlanAgent constructs the agent and registers it.
func NewTravelPlanAgent(gen model.Generator, registry *a2a.Registry, optFns ...func(o *BaseConfig)) *TravelPlanAgent {
	cfg := BaseConfig{
		ID:          "travel_plan_agent",
		Name:        "travel_plan",
		DisplayName: "TravelPlanAgent",
		Description: "Generates complete travel plans including food, hotels and routes",
		Capabilities: []a2a.Capability{{
			Name:        "generate_travel_plan",
			Description: "Generate a complete travel plan in one pass",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"destination": map[string]any{"type": "string"},
					"duration":    map[string]any{"type": "string"},
					"interests":   map[string]any{"type": "array"},
				},
				"required": []string{"destination", "duration", "interests"},
			},
			OutputSchema:      map[string]any{"type": "object"},
			EstimatedDuration: 20,
		}},
		Generator: gen,
		Registry:  registry,
	}
	for _, fn := range optFns {
		fn(&cfg)
	}
	return &TravelPlanAgent{Base: NewBase(cfg)}
}

// Execute implements Agent.
func (a *TravelPlanAgent) Execute(ctx context.Context, input core.Input) core.Result {
	if err := a.Validate(input, "destination", "duration", "interests"); err != nil {
		return err.ToResult()
	}

	destination := input.String("destination", "")
	duration := input.String("duration", "")
	interests := input.StringSlice("interests")
	budget := input.String("budget", "")
	travelDates := input.String("travel_dates", "")
	travelStyle := input.String("travel_style", "")
	groupSize := input.String("group_size", "")

	prompt := fmt.Sprintf(`Create a complete travel plan for a visitor spending %s in %s.
Travel dates: %s
Group size: %s
Interests: %s
Budget level: %s
Travel style: %s

The plan should include:
1. A trip overview
2. A detailed schedule for each day (times, places, activities)
3. Sights with ticket information
4. Restaurant suggestions
5. Hotel suggestions and lodging arrangements
6. Transport arrangements and costs
7. A budget breakdown
8. Packing advice
9. Safety notes
10. Contingency plans
11. Practical tips

Make the plan thorough, realistic and matched to the visitor's needs.`,
		duration, destination, travelDates, groupSize, joinList(interests), budget, travelStyle)

	plan, err := a.Generate(ctx, prompt)
	if err != nil {
		return core.NewCollaboratorError(err).ToResult()
	}

	return core.Success("travel plan generated", map[string]any{
		"destination": destination,
		"duration":    duration,
		"interests":   interests,
		"travel_plan": plan,
	})
}
