package agent

import (
	"context"
	"fmt"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/model"
)

// TopicRecommendationAgent curates themed recommendation collections.
type TopicRecommendationAgent struct {
	Base
}

// NewTopicRecommendationAgent constructs the agent and registers it.
func NewTopicRecommendationAgent(gen model.Generator, registry *a2a.Registry, optFns ...func(o *BaseConfig)) *TopicRecommendationAgent {
	cfg := BaseConfig{
		ID:          "topic_recommendation_agent",
		Name:        "topic_recommendation",
		DisplayName: "TopicRecommendationAgent",
		Description: "Curates themed recommendation collections",
		Capabilities: []a2a.Capability{{
			Name:        "recommend_topic",
			Description: "Curate a themed recommendation collection",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"topic":     map[string]any{"type": "string"},
					"interests": map[string]any{"type": "array"},
				},
				"required": []string{"topic", "interests"},
			},
			OutputSchema:      map[string]any{"type": "object"},
			EstimatedDuration: 12,
		}},
		Generator: gen,
		Registry:  registry,
	}
	for _, fn := range optFns {
		fn(&cfg)
	}
	return &TopicRecommendationAgent{Base: NewBase(cfg)}
}

// Execute implements Agent.
func (a *TopicRecommendationAgent) Execute(ctx context.Context, input core.Input) core.Result {
	if err := a.Validate(input, "topic", "interests"); err != nil {
		return err.ToResult()
	}

	topic := input.String("topic", "")
	interests := input.StringSlice("interests")
	audience := input.String("target_audience", "")
	budget := input.String("budget", "")
	season := input.String("season", "")

	prompt := fmt.Sprintf(`Curate a themed recommendation collection about %s for %s.
Interests: %s
Budget level: %s
Season: %s

The collection should include:
1. The theme and its core idea
2. Recommended destinations or products
3. What makes each recommendation stand out
4. Who each one suits
5. Budget guidance
6. The best time to go
7. Why each item earned its place
8. Practical tips

Keep the collection rich, well structured and suited to the audience.`,
		topic, audience, joinList(interests), budget, season)

	recommendation, err := a.Generate(ctx, prompt)
	if err != nil {
		return core.NewCollaboratorError(err).ToResult()
	}

	return core.Success("topic recommendation generated", map[string]any{
		"topic":                 topic,
		"recommendation_result": recommendation,
	})
}
