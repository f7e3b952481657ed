package agent

import (
	"context"
	"fmt"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/model"
)

// FoodRecommendationAgent recommends restaurants near a location.
type FoodRecommendationAgent struct {
	Base
}

// NewFoodRecommendationAgent constructs the agent and registers it.
func NewFoodRecommendationAgent(gen model.Generator, registry *a2a.Registry, optFns ...func(o *BaseConfig)) *FoodRecommendationAgent {
	cfg := BaseConfig{
		ID:          "food_recommendation_agent",
		Name:        "food_recommendation",
		DisplayName: "FoodRecommendationAgent",
		Description: "Recommends nearby restaurants matching cuisine and budget",
		Capabilities: []a2a.Capability{{
			Name:        "recommend_restaurants",
			Description: "Recommend nearby restaurants by location, cuisine and budget",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"location":     map[string]any{"type": "string"},
					"cuisine_type": map[string]any{"type": "string"},
					"budget":       map[string]any{"type": "string"},
				},
				"required": []string{"location", "cuisine_type"},
			},
			OutputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"recommendations": map[string]any{"type": "string"},
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
	return &FoodRecommendationAgent{Base: NewBase(cfg)}
}

// Execute implements Agent.
func (a *FoodRecommendationAgent) Execute(ctx context.Context, input core.Input) core.Result {
	if err := a.Validate(input, "location", "cuisine_type"); err != nil {
		return err.ToResult()
	}

	location := input.String("location", "")
	cuisine := input.StringSlice("cuisine_type")
	budget := input.String("budget", "")
	restrictions := input.StringSlice("dietary_restrictions")

	prompt := fmt.Sprintf(`Recommend %s restaurants near %s.
Budget level: %s
Dietary restrictions: %s

Each recommendation should include:
1. Restaurant name and address
2. Cuisine type
3. Signature dishes
4. Average cost per person
5. What makes it special
6. Rating and typical reviews
7. Opening hours
8. How to get there

Make sure every suggestion fits the stated constraints.`,
		joinList(cuisine), location, budget, joinList(restrictions))

	recommendations, err := a.Generate(ctx, prompt)
	if err != nil {
		return core.NewCollaboratorError(err).ToResult()
	}

	return core.Success("food recommendations generated", map[string]any{
		"location":        location,
		"cuisine_type":    cuisine,
		"recommendations": recommendations,
	})
}
