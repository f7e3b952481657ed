package agent

import (
	"context"
	"fmt"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/model"
)

// ItineraryAgent plans a day-by-day itinerary for a trip.
type ItineraryAgent struct {
	Base
}

// NewItineraryAgent constructs the agent and registers it.
func NewItineraryAgent(gen model.Generator, registry *a2a.Registry, optFns ...func(o *BaseConfig)) *ItineraryAgent {
	cfg := BaseConfig{
		ID:          "itinerary_agent",
		Name:        "itinerary",
		DisplayName: "ItineraryAgent",
		Description: "Plans detailed day-by-day itineraries",
		Capabilities: []a2a.Capability{{
			Name:        "plan_itinerary",
			Description: "Plan a day-by-day itinerary from destination, duration and interests",
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
					"itinerary": map[string]any{"type": "string"},
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
	return &ItineraryAgent{Base: NewBase(cfg)}
}

// Execute implements Agent.
func (a *ItineraryAgent) Execute(ctx context.Context, input core.Input) core.Result {
	if err := a.Validate(input, "destination", "duration", "interests"); err != nil {
		return err.ToResult()
	}

	destination := input.String("destination", "")
	duration := input.String("duration", "")
	interests := input.StringSlice("interests")
	budget := input.String("budget", "")
	travelDates := input.String("travel_dates", "")
	travelStyle := input.String("travel_style", "")

	prompt := fmt.Sprintf(`Plan a detailed, flexible itinerary for a visitor spending %s in %s.
Travel dates: %s
Interests: %s
Budget level: %s
Travel style: %s

The itinerary should cover:
1. A schedule for each day (times, places, activities)
2. Sights with suggested visit durations
3. Restaurant suggestions near each day's route
4. Where to stay
5. Transport between stops
6. Budget allocation
7. Backup options for bad weather
8. Practical tips

Keep the pacing realistic and aligned with the visitor's interests.`,
		duration, destination, travelDates, joinList(interests), budget, travelStyle)

	itinerary, err := a.Generate(ctx, prompt)
	if err != nil {
		return core.NewCollaboratorError(err).ToResult()
	}

	return core.Success("itinerary generated", map[string]any{
		"destination": destination,
		"duration":    duration,
		"interests":   interests,
		"itinerary":   itinerary,
	})
}
