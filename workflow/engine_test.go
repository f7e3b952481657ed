package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pumpkinkking/whereeatai/core"
)

func recordStage(mu *sync.Mutex, order *[]string, name string) StageFunc {
	return func(_ context.Context, state *State) error {
		mu.Lock()
		*order = append(*order, name)
		mu.Unlock()
		state.SetResult(name, core.Success(name+" done", map[string]any{"stage": name}))
		return nil
	}
}

func TestEngine_RunsInDependencyOrder(t *testing.T) {
	var mu sync.Mutex
	var order []string

	e := NewEngine("test")
	require.NoError(t, e.AddStage("a", nil, recordStage(&mu, &order, "a")))
	require.NoError(t, e.AddStage("b", []string{"a"}, recordStage(&mu, &order, "b")))
	require.NoError(t, e.AddStage("c", []string{"b"}, recordStage(&mu, &order, "c")))

	res := e.Run(context.Background(), core.Input{})
	require.True(t, res.OK())
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestEngine_ParallelStagesJoinBeforeNextLevel(t *testing.T) {
	var mu sync.Mutex
	var running, peak int

	slowStage := func(name string) StageFunc {
		return func(_ context.Context, state *State) error {
			mu.Lock()
			running++
			if running > peak {
				peak = running
			}
			mu.Unlock()
			time.Sleep(20 * time.Millisecond)
			mu.Lock()
			running--
			mu.Unlock()
			state.SetResult(name, core.Success("done", nil))
			return nil
		}
	}

	var joined bool
	e := NewEngine("test")
	require.NoError(t, e.AddStage("root", nil, func(context.Context, *State) error { return nil }))
	require.NoError(t, e.AddStage("left", []string{"root"}, slowStage("left")))
	require.NoError(t, e.AddStage("right", []string{"root"}, slowStage("right")))
	require.NoError(t, e.AddStage("merge", []string{"left", "right"}, func(_ context.Context, state *State) error {
		mu.Lock()
		joined = running == 0
		mu.Unlock()
		return nil
	}))

	res := e.Run(context.Background(), core.Input{})
	require.True(t, res.OK())
	assert.Equal(t, 2, peak, "left and right should overlap")
	assert.True(t, joined, "merge must not start while siblings run")
}

func TestEngine_StageErrorYieldsPartialSuccess(t *testing.T) {
	e := NewEngine("test")
	require.NoError(t, e.AddStage("ok", nil, func(_ context.Context, state *State) error {
		state.SetResult("ok", core.Success("fine", map[string]any{"v": 1}))
		return nil
	}))
	require.NoError(t, e.AddStage("broken", nil, func(context.Context, *State) error {
		return errors.New("boom")
	}))
	require.NoError(t, e.AddStage("after", []string{"ok", "broken"}, func(_ context.Context, state *State) error {
		// Downstream still runs and sees the errored slot as absent data.
		assert.Empty(t, state.StageData("broken"))
		assert.Equal(t, map[string]any{"v": 1}, state.StageData("ok"))
		state.SetFinal(map[string]any{"merged": true})
		return nil
	}))

	res := e.Run(context.Background(), core.Input{})
	assert.Equal(t, core.StatusPartialSuccess, res.Status)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "broken: boom", res.Errors[0])
	assert.Equal(t, true, res.Data["merged"])
}

func TestEngine_StagePanicIsContained(t *testing.T) {
	e := NewEngine("test")
	require.NoError(t, e.AddStage("panics", nil, func(context.Context, *State) error {
		panic("kaboom")
	}))
	require.NoError(t, e.AddStage("survivor", []string{"panics"}, func(_ context.Context, state *State) error {
		state.SetFinal(map[string]any{"survived": true})
		return nil
	}))

	res := e.Run(context.Background(), core.Input{})
	assert.Equal(t, core.StatusPartialSuccess, res.Status)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "panics: panic: kaboom")
	assert.Equal(t, true, res.Data["survived"])
}

func TestEngine_RejectsDuplicateStage(t *testing.T) {
	e := NewEngine("test")
	require.NoError(t, e.AddStage("a", nil, nil))
	assert.Error(t, e.AddStage("a", nil, nil))
	assert.Error(t, e.AddStage("", nil, nil))
}

func TestEngine_UnknownDependencyFailsRun(t *testing.T) {
	e := NewEngine("test")
	require.NoError(t, e.AddStage("a", []string{"ghost"}, nil))

	res := e.Run(context.Background(), core.Input{})
	require.True(t, res.Failed())
	assert.Contains(t, res.Message, "unknown stage")
}

func TestEngine_CycleFailsRun(t *testing.T) {
	e := NewEngine("test")
	require.NoError(t, e.AddStage("a", []string{"b"}, nil))
	require.NoError(t, e.AddStage("b", []string{"a"}, nil))

	res := e.Run(context.Background(), core.Input{})
	require.True(t, res.Failed())
	assert.Contains(t, res.Message, "cycle")
}

func TestState_SetResultIsWriteOnce(t *testing.T) {
	s := newState(core.Input{})
	s.SetResult("slot", core.Success("first", map[string]any{"v": 1}))
	s.SetResult("slot", core.Success("second", map[string]any{"v": 2}))

	r, ok := s.Result("slot")
	require.True(t, ok)
	assert.Equal(t, "first", r.Message)
}

func TestState_FinalDefaultsToEmpty(t *testing.T) {
	s := newState(nil)
	assert.NotNil(t, s.Final())
	assert.Empty(t, s.Final())
	assert.NotNil(t, s.Input())
}
