package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pumpkinkking/whereeatai/agent"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/model"
)

// substrFailGenerator fails generation only for prompts containing one of
// the trigger substrings, so a single stage can be broken in isolation.
type substrFailGenerator struct {
	triggers []string
}

func (g *substrFailGenerator) Generate(_ context.Context, req model.Request) (string, error) {
	for _, trig := range g.triggers {
		if strings.Contains(req.Prompt, trig) {
			return "", errors.New("simulated outage")
		}
	}
	return "generated: " + req.Prompt[:20], nil
}

func (g *substrFailGenerator) Info() model.Info { return model.Info{Name: "fail", Provider: "mock"} }

func newTravelFixture(gen model.Generator) *TravelWorkflow {
	m := agent.NewManager(func(o *agent.ManagerOptions) { o.Generator = gen })
	return NewTravelWorkflow(m)
}

func kyotoInput() core.Input {
	return core.Input{
		"destination": "Kyoto",
		"duration":    "3 days",
		"interests":   []string{"food", "history"},
	}
}

func TestTravelWorkflow_Success(t *testing.T) {
	gen := model.NewMockGenerator()
	gen.AddResponse("travelogue", "a vivid travelogue")
	gen.AddResponse("itinerary", "a packed itinerary")
	gen.AddResponse("restaurants near", "kaiseki spots")
	gen.AddResponse("price", "Ctrip is cheapest")

	wf := newTravelFixture(gen)
	res := wf.Run(context.Background(), kyotoInput())

	require.Equal(t, core.StatusSuccess, res.Status)
	assert.Equal(t, "travel plan generated", res.Message)
	assert.Empty(t, res.Errors)

	assert.Equal(t, "Kyoto", res.Data["destination"])
	assert.Equal(t, "3 days", res.Data["duration"])

	for _, key := range []string{"travelogue", "itinerary", "food_recommendations", "price_comparison"} {
		section, ok := res.Data[key].(map[string]any)
		require.True(t, ok, "final plan should contain %s", key)
		assert.NotEmpty(t, section, "%s should not be empty", key)
	}
	assert.Empty(t, res.Data["errors"])
}

func TestTravelWorkflow_MissingDestinationIsPartial(t *testing.T) {
	wf := newTravelFixture(model.NewMockGenerator())
	res := wf.Run(context.Background(), core.Input{
		"duration":  "3 days",
		"interests": []string{"food"},
	})

	require.Equal(t, core.StatusPartialSuccess, res.Status)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "destination")

	// The merge still ran and produced a final plan shell.
	assert.Equal(t, "", res.Data["destination"])
	assert.Contains(t, res.Data, "travelogue")
	assert.NotEmpty(t, res.Data["errors"])
}

func TestTravelWorkflow_FoodFailureDegrades(t *testing.T) {
	gen := &substrFailGenerator{triggers: []string{"restaurants near"}}
	wf := newTravelFixture(gen)

	res := wf.Run(context.Background(), kyotoInput())

	require.Equal(t, core.StatusPartialSuccess, res.Status)
	assert.Equal(t, "travel plan generated with partial failures", res.Message)

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "recommend_food")

	// The failed branch contributes an empty section, the others survive.
	assert.Empty(t, res.Data["food_recommendations"])
	assert.NotEmpty(t, res.Data["travelogue"])
	assert.NotEmpty(t, res.Data["itinerary"])
	assert.NotEmpty(t, res.Data["price_comparison"])
}

func TestTravelWorkflow_CustomPlatforms(t *testing.T) {
	m := agent.NewManager()
	var captured core.Input
	wf := NewTravelWorkflow(m)

	// Run once with explicit platforms and check they reach the price stage
	// through the protocol history payload.
	input := kyotoInput()
	input["platforms"] = []string{"Expedia"}
	res := wf.Run(context.Background(), input)
	require.Equal(t, core.StatusSuccess, res.Status)

	for _, msg := range m.Protocol().History("price_comparison_agent", 0) {
		if msg.Receiver == "price_comparison_agent" {
			captured = core.Input(msg.Payload.Data)
		}
	}
	require.NotNil(t, captured)
	assert.Equal(t, []string{"Expedia"}, captured.StringSlice("platforms"))
	assert.Equal(t, "Kyoto travel package", captured.String("product", ""))
}

func TestTravelWorkflow_Name(t *testing.T) {
	wf := newTravelFixture(model.NewMockGenerator())
	assert.Equal(t, "travel_plan", wf.Name())
}
