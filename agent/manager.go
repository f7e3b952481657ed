package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/pumpkinkking/whereeatai/a2a"
	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/logging"
	"github.com/pumpkinkking/whereeatai/model"
)

// ManagerID is the sender identifier the manager uses on protocol messages.
const ManagerID = "agent_manager"

// Manager owns the live agents and dispatches work to them by name. It is
// the recovery boundary of the system: no fault — panic or otherwise — from
// an agent or its collaborator ever propagates past ExecuteAgent or
// ExecuteWorkflow; every outcome is a core.Result.
type Manager struct {
	registry  *a2a.Registry
	protocol  *a2a.Protocol
	agents    map[string]Agent
	order     []string
	workflows map[string]core.Workflow
	logger    logging.Logger
}

// ManagerOptions configures a Manager.
type ManagerOptions struct {
	// Generator is shared by all constructed agents. Defaults to a
	// MockGenerator, which is safe for local development and tests.
	Generator model.Generator
	// Registry defaults to a fresh registry.
	Registry *a2a.Registry
	// Protocol defaults to a fresh protocol bound to the registry.
	Protocol *a2a.Protocol
	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// NewManager constructs the manager together with the full agent set. Each
// agent self-registers into the registry during construction.
func NewManager(optFns ...func(o *ManagerOptions)) *Manager {
	opts := ManagerOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Generator == nil {
		opts.Generator = model.NewMockGenerator()
	}
	if opts.Registry == nil {
		opts.Registry = a2a.NewRegistry(func(o *a2a.RegistryOptions) { o.Logger = opts.Logger })
	}
	if opts.Protocol == nil {
		opts.Protocol = a2a.NewProtocol(opts.Registry, func(o *a2a.ProtocolOptions) { o.Logger = opts.Logger })
	}

	m := &Manager{
		registry:  opts.Registry,
		protocol:  opts.Protocol,
		agents:    make(map[string]Agent),
		workflows: make(map[string]core.Workflow),
		logger:    logging.OrNoOp(opts.Logger),
	}

	gen, reg := opts.Generator, opts.Registry
	for _, a := range []Agent{
		NewTravelogueAgent(gen, reg),
		NewItineraryAgent(gen, reg),
		NewFoodRecommendationAgent(gen, reg),
		NewPriceComparisonAgent(gen, reg),
		NewXiaohongshuAgent(gen, reg),
		NewVideoAgent(gen, reg),
		NewTopicRecommendationAgent(gen, reg),
		NewTravelPlanAgent(gen, reg),
	} {
		m.agents[a.Name()] = a
		m.order = append(m.order, a.Name())
	}

	return m
}

// Registry exposes the shared registry for introspection surfaces.
func (m *Manager) Registry() *a2a.Registry { return m.registry }

// Protocol exposes the shared message protocol.
func (m *Manager) Protocol() *a2a.Protocol { return m.protocol }

// Agent resolves an agent by its dispatch name.
func (m *Manager) Agent(name string) (Agent, bool) {
	a, ok := m.agents[name]
	return a, ok
}

// Agents returns all agents in construction order.
func (m *Manager) Agents() []Agent {
	out := make([]Agent, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.agents[name])
	}
	return out
}

// RegisterWorkflow makes a workflow dispatchable through ExecuteWorkflow.
func (m *Manager) RegisterWorkflow(wf core.Workflow) {
	m.workflows[wf.Name()] = wf
}

// ExecuteAgent resolves the agent by name and dispatches Execute. The
// dispatch is recorded through the A2A protocol as a request/response pair
// (the protocol's send is a handshake; this call is the explicit execution
// the protocol defers to). Unknown names yield a not-found result; a
// panicking agent or collaborator yields a collaborator error result.
func (m *Manager) ExecuteAgent(ctx context.Context, name string, input core.Input) (res core.Result) {
	a, ok := m.agents[name]
	if !ok {
		m.logger.Warn("agent not found", "agent", name)
		return core.NewNotFoundError("agent", name).ToResult()
	}

	req := m.protocol.CreateMessage(ManagerID, a.ID(), a2a.MessageTypeRequest, a2a.ActionExecute,
		map[string]any(input))
	if send := m.protocol.SendMessage(req); send.Failed() {
		m.logger.Warn("dispatch handshake failed", "agent", name, "reason", send.Message)
	}

	// The message's timeout bounds the execution; a timed-out collaborator
	// call surfaces as a recovered collaborator error, not a crashed run.
	ctx, cancel := context.WithTimeout(ctx, time.Duration(req.Metadata.TimeoutSeconds)*time.Second)
	defer cancel()

	m.registry.UpdateStatus(a.ID(), a2a.StatusBusy, 1)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("agent panicked", "agent", name, "panic", r)
			res = core.NewCollaboratorError(fmt.Errorf("agent %s panicked: %v", name, r)).ToResult()
		}
		status := a2a.StatusActive
		msgType := a2a.MessageTypeResponse
		if res.Failed() {
			status = a2a.StatusError
			msgType = a2a.MessageTypeError
		}
		m.registry.UpdateStatus(a.ID(), status, 0)
		m.protocol.CreateMessage(a.ID(), ManagerID, msgType, a2a.ActionUpdate,
			map[string]any{"status": string(res.Status), "message": res.Message},
			func(o *a2a.MessageOptions) { o.CorrelationID = req.ID })
		m.logger.Info("agent executed",
			"agent", name, "status", res.Status, "duration", time.Since(start))
	}()

	res = a.Execute(ctx, input)
	return res
}

// ExecuteWorkflow dispatches to a registered workflow by name. Unknown names
// yield a not-found result.
func (m *Manager) ExecuteWorkflow(ctx context.Context, name string, input core.Input) core.Result {
	wf, ok := m.workflows[name]
	if !ok {
		m.logger.Warn("workflow not found", "workflow", name)
		return core.NewNotFoundError("workflow", name).ToResult()
	}
	return wf.Run(ctx, input)
}
