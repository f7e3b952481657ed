package model

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Request captures the normalized generation input produced by agents.
type Request struct {
	Prompt       string `json:"prompt"`
	SystemPrompt string `json:"system_prompt,omitempty"`
}

// Info contains metadata about a generator implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Generator is the minimal interface agents use to drive text generation.
// Implementations may fail with transport or timeout errors; callers convert
// such faults into structured error results and never let them escape.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)

	// Info returns information about the generator implementation.
	Info() Info
}

// MockGenerator is a lightweight in-memory Generator useful for tests. Canned
// responses are matched by prompt substring; unmatched prompts produce a
// generic echo. A failure can be injected to exercise error paths.
type MockGenerator struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	err       error
	calls     int
}

// NewMockGenerator constructs a MockGenerator.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		info:      Info{Name: "mock", Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a canned completion for prompts containing substr.
func (m *MockGenerator) AddResponse(substr, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[substr] = response
}

// FailWith makes every subsequent Generate call return err. Pass nil to
// restore normal behavior.
func (m *MockGenerator) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times Generate has been invoked.
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Generate implements Generator.
func (m *MockGenerator) Generate(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for substr, response := range m.responses {
		if strings.Contains(req.Prompt, substr) {
			return response, nil
		}
	}
	return fmt.Sprintf("Mock response to: %s", req.Prompt), nil
}

// Info implements Generator.
func (m *MockGenerator) Info() Info { return m.info }
