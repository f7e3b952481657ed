package workflow

import (
	"sync"

	"github.com/pumpkinkking/whereeatai/core"
)

// State is the mutable record threaded through a single workflow run. Each
// run owns a fresh instance; it is never shared across runs. Accessors are
// mutex-guarded because stages of the same depth may run concurrently.
type State struct {
	mu      sync.Mutex
	input   core.Input
	results map[string]core.Result
	errors  []string
	final   map[string]any
}

func newState(input core.Input) *State {
	if input == nil {
		input = core.Input{}
	}
	return &State{input: input, results: make(map[string]core.Result)}
}

// Input returns the workflow input.
func (s *State) Input() core.Input { return s.input }

// SetResult stores a stage's result. Slots are write-once per run; a second
// write to the same slot is ignored.
func (s *State) SetResult(stage string, r core.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.results[stage]; exists {
		return
	}
	s.results[stage] = r
}

// Result returns the result slot for a stage.
func (s *State) Result(stage string) (core.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.results[stage]
	return r, ok
}

// StageData returns a stage's output data for merging. Errored or never-run
// stages yield an empty map so downstream consumers degrade instead of
// branching on absence.
func (s *State) StageData(stage string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.results[stage]
	if !ok || r.Failed() || r.Data == nil {
		return map[string]any{}
	}
	return r.Data
}

// AddError appends to the accumulated error list. Errors are never removed.
func (s *State) AddError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, msg)
}

// Errors returns a copy of the accumulated errors in append order.
func (s *State) Errors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.errors))
	copy(out, s.errors)
	return out
}

// SetFinal stores the merged final output.
func (s *State) SetFinal(data map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.final = data
}

// Final returns the merged final output, or an empty map if no merge stage
// produced one.
func (s *State) Final() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.final == nil {
		return map[string]any{}
	}
	return s.final
}
