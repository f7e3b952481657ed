package core

import "context"

// Status classifies the outcome of an agent or workflow operation.
type Status string

const (
	// StatusSuccess indicates the operation completed without errors.
	StatusSuccess Status = "success"
	// StatusPartialSuccess indicates a workflow completed but one or more
	// stages failed; Data holds the best-effort merged output.
	StatusPartialSuccess Status = "partial_success"
	// StatusError indicates the operation failed entirely.
	StatusError Status = "error"
)

// Input is the loosely-typed request payload consumed by agents and
// workflows. Keys are agent-specific (destination, duration, note_content...).
type Input map[string]any

// String returns the string value for key, or fallback if the key is absent
// or not a string.
func (in Input) String(key, fallback string) string {
	if v, ok := in[key].(string); ok {
		return v
	}
	return fallback
}

// StringSlice coerces the value for key into a []string. It accepts []string,
// []any with string elements and bare strings; anything else yields nil.
func (in Input) StringSlice(key string) []string {
	switch v := in[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// Has reports whether key is present in the input.
func (in Input) Has(key string) bool {
	_, ok := in[key]
	return ok
}

// Result is the uniform envelope returned by every public operation. No
// operation reports failure by panicking or by terminating the process; a
// failed call is a Result with StatusError, a degraded workflow run is a
// Result with StatusPartialSuccess and a non-empty Errors list.
type Result struct {
	Status  Status         `json:"status"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Errors  []string       `json:"errors,omitempty"`
}

// OK reports whether the result is a full success.
func (r Result) OK() bool { return r.Status == StatusSuccess }

// Failed reports whether the result is a total failure.
func (r Result) Failed() bool { return r.Status == StatusError }

// DataMap returns the nested map stored under Data[key], or an empty map when
// the slot is absent or holds a non-map value. Downstream workflow stages use
// it to treat upstream error results as absent data.
func (r Result) DataMap(key string) map[string]any {
	if m, ok := r.Data[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// Success builds a success result.
func Success(message string, data map[string]any) Result {
	return Result{Status: StatusSuccess, Message: message, Data: data}
}

// Partial builds a partial-success result carrying the accumulated stage
// errors alongside the merged data.
func Partial(message string, data map[string]any, errs []string) Result {
	return Result{Status: StatusPartialSuccess, Message: message, Data: data, Errors: errs}
}

// Failure builds a total-failure result.
func Failure(message string) Result {
	return Result{Status: StatusError, Message: message}
}

// Workflow is the contract the Agent Manager dispatches workflow invocations
// to. Implementations live in the workflow package; the interface is declared
// here so agent and workflow can depend on each other's behavior without an
// import cycle.
type Workflow interface {
	Name() string
	Run(ctx context.Context, input Input) Result
}
