package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/model"
)

// panicGenerator simulates a collaborator that crashes instead of returning
// an error.
type panicGenerator struct{}

func (panicGenerator) Generate(context.Context, model.Request) (string, error) {
	panic("collaborator crashed")
}

func (panicGenerator) Info() model.Info { return model.Info{Name: "panic", Provider: "mock"} }

func TestNewManager_ConstructsAgentSet(t *testing.T) {
	m := NewManager()

	agents := m.Agents()
	assert.Len(t, agents, 8)
	assert.Equal(t, 8, m.Registry().Len())

	for _, name := range []string{
		"travelogue", "itinerary", "food_recommendation", "price_comparison",
		"xiaohongshu", "video", "topic_recommendation", "travel_plan",
	} {
		_, ok := m.Agent(name)
		assert.True(t, ok, "agent %s should exist", name)
	}
}

func TestManager_ExecuteAgent(t *testing.T) {
	gen := model.NewMockGenerator()
	gen.AddResponse("travelogue", "A quiet morning in Arashiyama...")

	m := NewManager(func(o *ManagerOptions) { o.Generator = gen })
	res := m.ExecuteAgent(context.Background(), "travelogue", core.Input{
		"destination": "Kyoto",
		"duration":    "3 days",
		"interests":   []string{"temples"},
	})

	require.True(t, res.OK())
	assert.Equal(t, "A quiet morning in Arashiyama...", res.Data["travelogue"])

	// The agent is back to active with zero load after the dispatch.
	reg, ok := m.Registry().Get("travelogue_agent")
	require.True(t, ok)
	assert.Equal(t, a2a.StatusActive, reg.Status)
	assert.Equal(t, 0.0, reg.Load)
}

func TestManager_ExecuteAgentNotFound(t *testing.T) {
	m := NewManager()

	res := m.ExecuteAgent(context.Background(), "ghost", core.Input{})
	require.True(t, res.Failed())
	assert.Equal(t, "agent not found: ghost", res.Message)
}

func TestManager_ExecuteAgentRecoversPanic(t *testing.T) {
	m := NewManager(func(o *ManagerOptions) { o.Generator = panicGenerator{} })

	res := m.ExecuteAgent(context.Background(), "travelogue", core.Input{
		"destination": "Kyoto",
		"duration":    "3 days",
		"interests":   []string{"temples"},
	})

	require.True(t, res.Failed())
	assert.Contains(t, res.Message, "panicked")

	// The failed agent is marked errored, not left busy.
	reg, ok := m.Registry().Get("travelogue_agent")
	require.True(t, ok)
	assert.Equal(t, a2a.StatusError, reg.Status)
}

func TestManager_ExecuteAgentRecordsMessages(t *testing.T) {
	m := NewManager()

	res := m.ExecuteAgent(context.Background(), "travelogue", core.Input{
		"destination": "Kyoto",
		"duration":    "3 days",
		"interests":   []string{"temples"},
	})
	require.True(t, res.OK())

	history := m.Protocol().History("travelogue_agent", 0)
	require.Len(t, history, 2)

	req, resp := history[0], history[1]
	assert.Equal(t, a2a.MessageTypeRequest, req.Type)
	assert.Equal(t, ManagerID, req.Sender)
	assert.Equal(t, "travelogue_agent", req.Receiver)

	assert.Equal(t, a2a.MessageTypeResponse, resp.Type)
	assert.Equal(t, "travelogue_agent", resp.Sender)
	assert.Equal(t, req.ID, resp.Metadata.CorrelationID)
	assert.Equal(t, "success", resp.Payload.Data["status"])
}

func TestManager_ExecuteAgentRecordsErrorMessage(t *testing.T) {
	m := NewManager()

	res := m.ExecuteAgent(context.Background(), "travelogue", core.Input{})
	require.True(t, res.Failed())

	history := m.Protocol().History("travelogue_agent", 0)
	require.Len(t, history, 2)
	assert.Equal(t, a2a.MessageTypeError, history[1].Type)
	assert.Equal(t, "error", history[1].Payload.Data["status"])
}

func TestManager_ExecuteWorkflowNotFound(t *testing.T) {
	m := NewManager()

	res := m.ExecuteWorkflow(context.Background(), "ghost_flow", core.Input{})
	require.True(t, res.Failed())
	assert.Equal(t, "workflow not found: ghost_flow", res.Message)
}

type stubWorkflow struct{ ran bool }

func (s *stubWorkflow) Name() string { return "stub" }

func (s *stubWorkflow) Run(_ context.Context, input core.Input) core.Result {
	s.ran = true
	return core.Success("ran", map[string]any{"echo": input.String("key", "")})
}

func TestManager_ExecuteWorkflowDispatch(t *testing.T) {
	m := NewManager()
	wf := &stubWorkflow{}
	m.RegisterWorkflow(wf)

	res := m.ExecuteWorkflow(context.Background(), "stub", core.Input{"key": "value"})
	require.True(t, res.OK())
	assert.True(t, wf.ran)
	assert.Equal(t, "value", res.Data["echo"])
}
