package a2a

import (
	"time"

	"github.com/google/uuid"
)

// MessageType classifies the intent of an A2A message.
type MessageType string

const (
	// MessageTypeRequest asks the receiver to perform work.
	MessageTypeRequest MessageType = "request"
	// MessageTypeResponse answers a prior request.
	MessageTypeResponse MessageType = "response"
	// MessageTypeNotification informs without expecting a reply.
	MessageTypeNotification MessageType = "notification"
	// MessageTypeError reports a failure to the receiver.
	MessageTypeError MessageType = "error"
)

// ActionType names the operation a message carries.
type ActionType string

const (
	// ActionExecute requests task execution.
	ActionExecute ActionType = "execute"
	// ActionQuery requests information.
	ActionQuery ActionType = "query"
	// ActionUpdate pushes a state change.
	ActionUpdate ActionType = "update"
	// ActionCancel requests cancellation of prior work.
	ActionCancel ActionType = "cancel"
)

// Priority orders competing messages.
type Priority string

const (
	// PriorityHigh marks urgent messages.
	PriorityHigh Priority = "high"
	// PriorityMedium is the default priority.
	PriorityMedium Priority = "medium"
	// PriorityLow marks background messages.
	PriorityLow Priority = "low"
)

// AgentStatus describes an agent's availability in the registry.
type AgentStatus string

const (
	// StatusActive means the agent accepts work.
	StatusActive AgentStatus = "active"
	// StatusBusy means the agent is processing work.
	StatusBusy AgentStatus = "busy"
	// StatusIdle means the agent is registered but dormant.
	StatusIdle AgentStatus = "idle"
	// StatusError means the agent's last execution failed.
	StatusError AgentStatus = "error"
	// StatusOffline means the agent is unreachable; sends to it fail.
	StatusOffline AgentStatus = "offline"
)

// Metadata bounds. CreateMessage clamps out-of-range values instead of
// failing so message creation is always successful.
const (
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 300
	MaxRetryBudget    = 10

	DefaultTimeoutSeconds = 30
	DefaultRetryBudget    = 3
)

// Capability declares an operation an agent can perform. Immutable once
// declared; multiple agents may declare capabilities with the same name.
type Capability struct {
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	InputSchema       map[string]any `json:"input_schema,omitempty"`
	OutputSchema      map[string]any `json:"output_schema,omitempty"`
	EstimatedDuration int            `json:"estimated_duration"` // seconds
}

// Payload carries the message body and optional shared context.
type Payload struct {
	Action  ActionType     `json:"action"`
	Data    map[string]any `json:"data"`
	Context map[string]any `json:"context,omitempty"`
}

// Metadata carries delivery hints: priority, timeout, retry budget and
// correlation for tracing related messages.
type Metadata struct {
	Priority       Priority `json:"priority"`
	TimeoutSeconds int      `json:"timeout"`
	RetryBudget    int      `json:"retry_count"`
	CorrelationID  string   `json:"correlation_id,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// Message is a directed exchange between two agent identifiers. Immutable
// once created.
type Message struct {
	ID        string      `json:"message_id"`
	Sender    string      `json:"sender"`
	Receiver  string      `json:"receiver"`
	CreatedAt time.Time   `json:"timestamp"`
	Type      MessageType `json:"message_type"`
	Payload   Payload     `json:"payload"`
	Metadata  Metadata    `json:"metadata"`
}

func newMessageID() string { return uuid.NewString() }

// Registration is the registry record for one agent.
type Registration struct {
	AgentID       string         `json:"agent_id"`
	Name          string         `json:"agent_name"`
	Description   string         `json:"description"`
	Capabilities  []Capability   `json:"capabilities"`
	Status        AgentStatus    `json:"status"`
	Load          float64        `json:"load"` // 0..1
	LastHeartbeat time.Time      `json:"last_heartbeat"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}
