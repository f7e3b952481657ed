package a2a_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/internal/testutil"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := a2a.NewRegistry()

	err := r.Register(testutil.Registration("a1", "AgentOne", "cap_one"))
	require.NoError(t, err)

	reg, ok := r.Get("a1")
	require.True(t, ok)
	assert.Equal(t, "AgentOne", reg.Name)
	assert.Equal(t, a2a.StatusActive, reg.Status)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RegisterValidation(t *testing.T) {
	r := a2a.NewRegistry()

	assert.Error(t, r.Register(a2a.Registration{Name: "NoID"}))
	assert.Error(t, r.Register(a2a.Registration{AgentID: "no_name"}))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_ReRegisterOverwritesKeepingPosition(t *testing.T) {
	r := a2a.NewRegistry()

	require.NoError(t, r.Register(testutil.Registration("a1", "First")))
	require.NoError(t, r.Register(testutil.Registration("a2", "Second")))

	updated := testutil.Registration("a1", "FirstUpdated", "new_cap")
	require.NoError(t, r.Register(updated))

	assert.Equal(t, 2, r.Len())

	regs := r.List()
	require.Len(t, regs, 2)
	assert.Equal(t, "a1", regs[0].AgentID)
	assert.Equal(t, "FirstUpdated", regs[0].Name)
	assert.Equal(t, "a2", regs[1].AgentID)
}

func TestRegistry_Unregister(t *testing.T) {
	r := a2a.NewRegistry()
	require.NoError(t, r.Register(testutil.Registration("a1", "AgentOne")))

	assert.True(t, r.Unregister("a1"))
	assert.False(t, r.Unregister("a1"))

	_, ok := r.Get("a1")
	assert.False(t, ok)
}

func TestRegistry_ListFiltersByStatus(t *testing.T) {
	r := a2a.NewRegistry()
	require.NoError(t, r.Register(testutil.Registration("a1", "AgentOne")))
	require.NoError(t, r.Register(testutil.Registration("a2", "AgentTwo")))
	r.UpdateStatus("a2", a2a.StatusOffline)

	active := r.List(a2a.StatusActive)
	require.Len(t, active, 1)
	assert.Equal(t, "a1", active[0].AgentID)

	offline := r.List(a2a.StatusOffline)
	require.Len(t, offline, 1)
	assert.Equal(t, "a2", offline[0].AgentID)

	assert.Len(t, r.List(), 2)
}

func TestRegistry_FindByCapability(t *testing.T) {
	r := a2a.NewRegistry()
	require.NoError(t, r.Register(testutil.Registration("a1", "AgentOne", "generate_travelogue")))
	require.NoError(t, r.Register(testutil.Registration("a2", "AgentTwo", "plan_itinerary")))
	require.NoError(t, r.Register(testutil.Registration("a3", "AgentThree", "generate_travelogue", "plan_itinerary")))

	found := r.FindByCapability("generate_travelogue")
	require.Len(t, found, 2)
	assert.Equal(t, "a1", found[0].AgentID)
	assert.Equal(t, "a3", found[1].AgentID)

	// Exact, case-sensitive match only.
	assert.Empty(t, r.FindByCapability("Generate_Travelogue"))
	assert.Empty(t, r.FindByCapability("unknown"))
}

func TestRegistry_UpdateStatus(t *testing.T) {
	r := a2a.NewRegistry()
	require.NoError(t, r.Register(testutil.Registration("a1", "AgentOne")))

	before, _ := r.Get("a1")
	r.UpdateStatus("a1", a2a.StatusBusy, 0.8)

	reg, ok := r.Get("a1")
	require.True(t, ok)
	assert.Equal(t, a2a.StatusBusy, reg.Status)
	assert.Equal(t, 0.8, reg.Load)
	assert.False(t, reg.LastHeartbeat.Before(before.LastHeartbeat))

	// Unknown agent is a no-op.
	r.UpdateStatus("ghost", a2a.StatusError)
	_, ok = r.Get("ghost")
	assert.False(t, ok)
}
