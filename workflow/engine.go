package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/logging"
)

// StageFunc performs one stage's unit of work against the run state. A
// returned error is recorded as a non-fatal stage failure; the run continues.
type StageFunc func(ctx context.Context, state *State) error

type stage struct {
	name string
	deps []string
	run  StageFunc
}

// Engine executes a DAG of named stages. Stages run in topological order;
// stages whose dependencies are satisfied at the same depth run concurrently,
// joined unconditionally before the next depth starts so one branch's
// failure never cancels a sibling.
type Engine struct {
	name   string
	stages []stage
	logger logging.Logger
}

// EngineOptions configures an Engine.
type EngineOptions struct {
	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// NewEngine creates an empty engine.
func NewEngine(name string, optFns ...func(o *EngineOptions)) *Engine {
	opts := EngineOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{name: name, logger: logging.OrNoOp(opts.Logger)}
}

// AddStage appends a stage with its dependencies. Duplicate stage names are
// rejected; dependency references are checked when the graph is sorted.
func (e *Engine) AddStage(name string, deps []string, fn StageFunc) error {
	if name == "" {
		return fmt.Errorf("stage name must not be empty")
	}
	for _, s := range e.stages {
		if s.name == name {
			return fmt.Errorf("duplicate stage %q", name)
		}
	}
	e.stages = append(e.stages, stage{name: name, deps: deps, run: fn})
	return nil
}

// levels performs a layered topological sort (Kahn). Stages in the same
// layer have no dependencies on each other and may execute concurrently.
func (e *Engine) levels() ([][]stage, error) {
	known := make(map[string]bool, len(e.stages))
	for _, s := range e.stages {
		known[s.name] = true
	}

	indegree := make(map[string]int, len(e.stages))
	for _, s := range e.stages {
		for _, d := range s.deps {
			if !known[d] {
				return nil, fmt.Errorf("stage %q depends on unknown stage %q", s.name, d)
			}
		}
		indegree[s.name] = len(s.deps)
	}

	var levels [][]stage
	done := make(map[string]bool, len(e.stages))
	remaining := len(e.stages)
	for remaining > 0 {
		var layer []stage
		for _, s := range e.stages {
			if done[s.name] || indegree[s.name] != 0 {
				continue
			}
			layer = append(layer, s)
		}
		if len(layer) == 0 {
			return nil, fmt.Errorf("stage graph contains a cycle")
		}
		for _, s := range layer {
			done[s.name] = true
			remaining--
		}
		for _, s := range e.stages {
			if done[s.name] {
				continue
			}
			for _, d := range s.deps {
				for _, l := range layer {
					if d == l.name {
						indegree[s.name]--
					}
				}
			}
		}
		levels = append(levels, layer)
	}
	return levels, nil
}

// Run allocates a fresh State, executes the DAG to completion and classifies
// the outcome: success when no stage failed, partial_success when the
// accumulated error list is non-empty, error only when the stage graph
// itself could not be executed.
func (e *Engine) Run(ctx context.Context, input core.Input) core.Result {
	levels, err := e.levels()
	if err != nil {
		e.logger.Error("workflow graph invalid", "workflow", e.name, "error", err)
		return core.Failure(fmt.Sprintf("workflow %s failed: %v", e.name, err))
	}

	start := time.Now()
	state := newState(input)

	for _, layer := range levels {
		if len(layer) == 1 {
			e.runStage(ctx, layer[0], state)
			continue
		}
		// Independent stages: run concurrently, join unconditionally.
		var wg sync.WaitGroup
		for _, s := range layer {
			wg.Add(1)
			go func(s stage) {
				defer wg.Done()
				e.runStage(ctx, s, state)
			}(s)
		}
		wg.Wait()
	}

	errs := state.Errors()
	e.logger.Info("workflow completed",
		"workflow", e.name, "stages", len(e.stages), "errors", len(errs), "duration", time.Since(start))

	if len(errs) > 0 {
		return core.Partial("workflow completed with errors", state.Final(), errs)
	}
	return core.Success("workflow completed", state.Final())
}

// runStage executes one stage, converting panics and returned errors into
// accumulated errors plus a placeholder error result in the stage's slot.
func (e *Engine) runStage(ctx context.Context, s stage, state *State) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("%s: panic: %v", s.name, r)
			e.logger.Error("stage panicked", "workflow", e.name, "stage", s.name, "panic", r)
			state.AddError(msg)
			state.SetResult(s.name, core.Failure(msg))
		}
	}()

	e.logger.Debug("stage started", "workflow", e.name, "stage", s.name)
	if err := s.run(ctx, state); err != nil {
		msg := fmt.Sprintf("%s: %v", s.name, err)
		e.logger.Error("stage failed", "workflow", e.name, "stage", s.name, "error", err)
		state.AddError(msg)
		state.SetResult(s.name, core.Failure(msg))
	}
}
