// Package workflow provides a small error-tolerant DAG engine and the two
// workflows built on it: the travel planning workflow and the content
// analysis workflow.
//
// Stages declare name and dependencies; the engine runs them in topological
// order, executing independent stages of the same depth concurrently. A
// stage failure never halts the run: the error is appended to the run
// state's accumulated errors, a placeholder error result is stored in the
// stage's slot, and downstream stages degrade by treating the errored slot
// as absent data. The final outcome is success, partial_success (some stages
// failed) or error (the stage graph itself was invalid).
package workflow
