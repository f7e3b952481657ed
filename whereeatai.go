// Package whereeatai provides a high-level façade over the agent coordination
// layer: the A2A registry and message protocol, the agent manager with its
// eight domain agents, and the two built-in workflows (travel planning and
// content analysis). Most applications interact with this package by:
//  1. Creating a WhereEatAI via New() (optionally overriding the generator
//     and logger)
//  2. Calling TravelPlan / ContentAnalysis, or ExecuteAgent / ExecuteWorkflow
//     for name-based dispatch
//
// Every operation returns a core.Result envelope; no call panics or reports
// failure by terminating the process. All defaults are safe for local
// development and testing: without configuration the agents run against a
// mock generator.
package whereeatai

import (
	"context"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/agent"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/logging"
	"github.com/pumpkinkking/whereeatai/model"
	"github.com/pumpkinkking/whereeatai/workflow"
)

// Options configures the WhereEatAI instance.
type Options struct {
	// Generator is the text generation backend shared by all agents.
	// Defaults to a mock generator if nil.
	Generator model.Generator

	// DefaultTimeoutSeconds seeds protocol message metadata.
	// Defaults to a2a.DefaultTimeoutSeconds.
	DefaultTimeoutSeconds int

	// DefaultRetryBudget seeds protocol message metadata.
	// Defaults to a2a.DefaultRetryBudget.
	DefaultRetryBudget int

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// WhereEatAI is the high-level façade aggregating the manager, registry,
// protocol and built-in workflows.
type WhereEatAI struct {
	opts    Options
	manager *agent.Manager
}

// New creates a new WhereEatAI instance with optional overrides. The agent
// set and both workflows are constructed and registered eagerly.
func New(optFns ...func(o *Options)) *WhereEatAI {
	opts := Options{
		DefaultTimeoutSeconds: a2a.DefaultTimeoutSeconds,
		DefaultRetryBudget:    a2a.DefaultRetryBudget,
		Logger:                logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	registry := a2a.NewRegistry(func(o *a2a.RegistryOptions) { o.Logger = opts.Logger })
	protocol := a2a.NewProtocol(registry, func(o *a2a.ProtocolOptions) {
		o.DefaultTimeoutSeconds = opts.DefaultTimeoutSeconds
		o.DefaultRetryBudget = opts.DefaultRetryBudget
		o.Logger = opts.Logger
	})

	m := agent.NewManager(func(o *agent.ManagerOptions) {
		o.Generator = opts.Generator
		o.Registry = registry
		o.Protocol = protocol
		o.Logger = opts.Logger
	})
	m.RegisterWorkflow(workflow.NewTravelWorkflow(m, func(o *workflow.TravelWorkflowOptions) {
		o.Logger = opts.Logger
	}))
	m.RegisterWorkflow(workflow.NewContentAnalysisWorkflow(m, func(o *workflow.ContentAnalysisWorkflowOptions) {
		o.Logger = opts.Logger
	}))

	return &WhereEatAI{opts: opts, manager: m}
}

// Manager exposes the underlying agent manager, mainly for the HTTP server.
func (w *WhereEatAI) Manager() *agent.Manager { return w.manager }

// Registry exposes the shared A2A registry.
func (w *WhereEatAI) Registry() *a2a.Registry { return w.manager.Registry() }

// Protocol exposes the shared A2A message protocol.
func (w *WhereEatAI) Protocol() *a2a.Protocol { return w.manager.Protocol() }

// ExecuteAgent dispatches an input to an agent by name.
func (w *WhereEatAI) ExecuteAgent(ctx context.Context, name string, input core.Input) core.Result {
	return w.manager.ExecuteAgent(ctx, name, input)
}

// ExecuteWorkflow dispatches an input to a registered workflow by name.
func (w *WhereEatAI) ExecuteWorkflow(ctx context.Context, name string, input core.Input) core.Result {
	return w.manager.ExecuteWorkflow(ctx, name, input)
}

// TravelPlan runs the travel planning workflow.
func (w *WhereEatAI) TravelPlan(ctx context.Context, input core.Input) core.Result {
	return w.manager.ExecuteWorkflow(ctx, workflow.TravelPlanName, input)
}

// ContentAnalysis runs the content analysis workflow.
func (w *WhereEatAI) ContentAnalysis(ctx context.Context, input core.Input) core.Result {
	return w.manager.ExecuteWorkflow(ctx, workflow.ContentAnalysisName, input)
}
