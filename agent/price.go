package agent

import (
	"context"
	"fmt"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/model"
)

// PriceComparisonAgent compares product prices across booking platforms.
type PriceComparisonAgent struct {
	Base
}

// NewPriceComparisonAgent constructs the agent and registers it.
func NewPriceComparisonAgent(gen model.Generator, registry *a2a.Registry, optFns ...func(o *BaseConfig)) *PriceComparisonAgent {
	cfg := BaseConfig{
		ID:          "price_comparison_agent",
		Name:        "price_comparison",
		DisplayName: "PriceComparisonAgent",
		Description: "Compares prices for a product across platforms",
		Capabilities: []a2a.Capability{{
			Name:        "compare_prices",
			Description: "Compare a product's price across platforms",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"product":   map[string]any{"type": "string"},
					"platforms": map[string]any{"type": "array"},
				},
				"required": []string{"product", "platforms"},
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
	return &PriceComparisonAgent{Base: NewBase(cfg)}
}

// Execute implements Agent.
func (a *PriceComparisonAgent) Execute(ctx context.Context, input core.Input) core.Result {
	if err := a.Validate(input, "product", "platforms"); err != nil {
		return err.ToResult()
	}

	product := input.String("product", "")
	platforms := input.StringSlice("platforms")
	location := input.String("location", "")

	prompt := fmt.Sprintf(`Compare prices for %s across these platforms: %s.
Location: %s

The comparison should include:
1. The product listing on each platform
2. A price comparison
3. Current discounts and promotions
4. Delivery or fulfillment details
5. After-sales service
6. The recommended platform to buy from
7. Purchase advice

Keep the comparison complete and the recommendation well reasoned.`,
		product, joinList(platforms), location)

	comparison, err := a.Generate(ctx, prompt)
	if err != nil {
		return core.NewCollaboratorError(err).ToResult()
	}

	return core.Success("price comparison generated", map[string]any{
		"product":           product,
		"platforms":         platforms,
		"comparison_result": comparison,
	})
}
