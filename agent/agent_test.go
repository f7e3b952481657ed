package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/model"
)

func TestTravelogueAgent_Execute(t *testing.T) {
	gen := model.NewMockGenerator()
	gen.AddResponse("Kyoto", "Day one: temples at dawn...")

	a := NewTravelogueAgent(gen, a2a.NewRegistry())
	res := a.Execute(context.Background(), core.Input{
		"destination": "Kyoto",
		"duration":    "3 days",
		"interests":   []string{"food", "history"},
	})

	require.True(t, res.OK())
	assert.Equal(t, "Day one: temples at dawn...", res.Data["travelogue"])
	assert.Equal(t, "Kyoto", res.Data["destination"])
	assert.Equal(t, 1, gen.Calls())
}

func TestTravelogueAgent_MissingFields(t *testing.T) {
	gen := model.NewMockGenerator()
	a := NewTravelogueAgent(gen, a2a.NewRegistry())

	res := a.Execute(context.Background(), core.Input{"destination": "Kyoto"})

	require.True(t, res.Failed())
	assert.Equal(t, "missing required fields: duration, interests", res.Message)
	assert.ElementsMatch(t, []string{"duration", "interests"}, res.Data["missing_fields"])
	// The collaborator is never called for invalid input.
	assert.Equal(t, 0, gen.Calls())
}

func TestTravelogueAgent_CollaboratorFailure(t *testing.T) {
	gen := model.NewMockGenerator()
	gen.FailWith(errors.New("upstream timeout"))

	a := NewTravelogueAgent(gen, a2a.NewRegistry())
	res := a.Execute(context.Background(), core.Input{
		"destination": "Kyoto",
		"duration":    "3 days",
		"interests":   []string{"food"},
	})

	require.True(t, res.Failed())
	assert.Equal(t, "generation failed: upstream timeout", res.Message)
}

func TestFoodRecommendationAgent_Execute(t *testing.T) {
	gen := model.NewMockGenerator()
	gen.AddResponse("restaurants near", "Try the market stalls on Nishiki street.")

	a := NewFoodRecommendationAgent(gen, a2a.NewRegistry())
	res := a.Execute(context.Background(), core.Input{
		"location":     "Kyoto",
		"cuisine_type": []string{"kaiseki"},
	})

	require.True(t, res.OK())
	assert.Equal(t, "Try the market stalls on Nishiki street.", res.Data["recommendations"])
	assert.Equal(t, "Kyoto", res.Data["location"])
}

func TestXiaohongshuAgent_RequiresNoteContent(t *testing.T) {
	a := NewXiaohongshuAgent(model.NewMockGenerator(), a2a.NewRegistry())

	res := a.Execute(context.Background(), core.Input{})
	require.True(t, res.Failed())
	assert.Equal(t, []string{"note_content"}, res.Data["missing_fields"])
}

func TestAgentsSelfRegister(t *testing.T) {
	reg := a2a.NewRegistry()
	gen := model.NewMockGenerator()

	NewTravelogueAgent(gen, reg)
	NewItineraryAgent(gen, reg)

	assert.Equal(t, 2, reg.Len())

	entry, ok := reg.Get("travelogue_agent")
	require.True(t, ok)
	assert.Equal(t, "TravelogueAgent", entry.Name)
	assert.Equal(t, a2a.StatusActive, entry.Status)

	found := reg.FindByCapability("plan_itinerary")
	require.Len(t, found, 1)
	assert.Equal(t, "itinerary_agent", found[0].AgentID)
}
