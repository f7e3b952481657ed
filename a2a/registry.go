package a2a

import (
	"errors"
	"sync"
	"time"

	"github.com/pumpkinkking/whereeatai/logging"
)

// Registry is the process-wide directory of agent registrations, queryable
// by id, status or capability name. One registration exists per agent id;
// re-registering overwrites the previous record (last writer wins) while
// keeping the agent's original insertion position so List order stays
// deterministic within a process run.
//
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Registration
	order   []string
	logger  logging.Logger
}

// RegistryOptions configures a Registry.
type RegistryOptions struct {
	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(optFns ...func(o *RegistryOptions)) *Registry {
	opts := RegistryOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Registry{
		entries: make(map[string]Registration),
		logger:  logging.OrNoOp(opts.Logger),
	}
}

// Register inserts or overwrites the entry keyed by the registration's agent
// id. The entry is discoverable immediately. It fails only on malformed
// input (missing agent id or name).
func (r *Registry) Register(reg Registration) error {
	if reg.AgentID == "" {
		return errors.New("registration missing agent id")
	}
	if reg.Name == "" {
		return errors.New("registration missing agent name")
	}
	if reg.LastHeartbeat.IsZero() {
		reg.LastHeartbeat = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[reg.AgentID]; !exists {
		r.order = append(r.order, reg.AgentID)
	}
	r.entries[reg.AgentID] = reg
	r.logger.Info("agent registered", "agent_id", reg.AgentID, "agent_name", reg.Name)
	return nil
}

// Unregister removes the entry if present and reports whether it existed.
func (r *Registry) Unregister(agentID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[agentID]; !ok {
		r.logger.Warn("unregister of unknown agent", "agent_id", agentID)
		return false
	}
	delete(r.entries, agentID)
	for i, id := range r.order {
		if id == agentID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.logger.Info("agent unregistered", "agent_id", agentID)
	return true
}

// Get returns the registration for agentID. Absence is not an error.
func (r *Registry) Get(agentID string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[agentID]
	return reg, ok
}

// List returns all registrations in insertion order, optionally filtered by
// status.
func (r *Registry) List(status ...AgentStatus) []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Registration, 0, len(r.order))
	for _, id := range r.order {
		reg := r.entries[id]
		if len(status) > 0 && reg.Status != status[0] {
			continue
		}
		out = append(out, reg)
	}
	return out
}

// FindByCapability returns every registration containing a capability whose
// name matches exactly (case-sensitive). Linear scan in insertion order.
func (r *Registry) FindByCapability(name string) []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Registration
	for _, id := range r.order {
		reg := r.entries[id]
		for _, c := range reg.Capabilities {
			if c.Name == name {
				out = append(out, reg)
				break
			}
		}
	}
	return out
}

// UpdateStatus updates an agent's status, refreshes its heartbeat and, when a
// load value is supplied, updates its load. No-op if the agent is unknown.
func (r *Registry) UpdateStatus(agentID string, status AgentStatus, load ...float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.entries[agentID]
	if !ok {
		return
	}
	reg.Status = status
	reg.LastHeartbeat = time.Now()
	if len(load) > 0 {
		reg.Load = load[0]
	}
	r.entries[agentID] = reg
	r.logger.Debug("agent status updated", "agent_id", agentID, "status", status)
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
