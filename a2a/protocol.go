package a2a

import (
	"sync"
	"time"

	"github.com/pumpkinkking/whereeatai/core"
	"github.com/pumpkinkking/whereeatai/logging"
)

// Protocol constructs, validates and records messages between agent
// identifiers. The history is append-only and insertion-ordered; creation
// and append happen atomically so history order always matches creation
// order even under concurrent senders.
type Protocol struct {
	registry *Registry

	mu      sync.Mutex
	history []Message

	defaultTimeout int
	defaultRetries int
	logger         logging.Logger
}

// ProtocolOptions configures a Protocol.
type ProtocolOptions struct {
	// DefaultTimeoutSeconds seeds message metadata when the caller does not
	// override it. Defaults to DefaultTimeoutSeconds.
	DefaultTimeoutSeconds int
	// DefaultRetryBudget seeds message metadata when the caller does not
	// override it. Defaults to DefaultRetryBudget.
	DefaultRetryBudget int
	// Logger defaults to a NoOpLogger if nil.
	Logger logging.Logger
}

// NewProtocol creates a protocol handler bound to the given registry.
func NewProtocol(registry *Registry, optFns ...func(o *ProtocolOptions)) *Protocol {
	opts := ProtocolOptions{
		DefaultTimeoutSeconds: DefaultTimeoutSeconds,
		DefaultRetryBudget:    DefaultRetryBudget,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Protocol{
		registry:       registry,
		defaultTimeout: clampTimeout(opts.DefaultTimeoutSeconds),
		defaultRetries: clampRetries(opts.DefaultRetryBudget),
		logger:         logging.OrNoOp(opts.Logger),
	}
}

// MessageOptions carries the optional fields of CreateMessage.
type MessageOptions struct {
	Context        map[string]any
	Priority       Priority
	TimeoutSeconds int
	RetryBudget    int
	CorrelationID  string
	Tags           []string
}

// CreateMessage builds a message with a fresh unique id and the current
// timestamp and appends it to the history. It never fails: no receiver
// existence check happens at creation time, and out-of-range timeout or
// retry values are clamped to their bounds.
func (p *Protocol) CreateMessage(
	sender, receiver string,
	msgType MessageType,
	action ActionType,
	data map[string]any,
	optFns ...func(o *MessageOptions),
) Message {
	opts := MessageOptions{
		Priority:       PriorityMedium,
		TimeoutSeconds: p.defaultTimeout,
		RetryBudget:    p.defaultRetries,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	// Creation and append share one critical section so the history order
	// is the creation order even when senders race.
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := Message{
		ID:        newMessageID(),
		Sender:    sender,
		Receiver:  receiver,
		CreatedAt: time.Now(),
		Type:      msgType,
		Payload: Payload{
			Action:  action,
			Data:    data,
			Context: opts.Context,
		},
		Metadata: Metadata{
			Priority:       opts.Priority,
			TimeoutSeconds: clampTimeout(opts.TimeoutSeconds),
			RetryBudget:    clampRetries(opts.RetryBudget),
			CorrelationID:  opts.CorrelationID,
			Tags:           opts.Tags,
		},
	}
	p.history = append(p.history, msg)

	p.logger.Debug("message created",
		"message_id", msg.ID, "sender", sender, "receiver", receiver, "type", msgType)
	return msg
}

// SendMessage validates that the receiver exists in the registry and is not
// offline, then acknowledges the send. This is a handshake, not a transport:
// the message is never dispatched to the receiver's execution path here —
// execution is a separate, explicit call through the agent manager.
func (p *Protocol) SendMessage(msg Message) core.Result {
	receiver, ok := p.registry.Get(msg.Receiver)
	if !ok {
		p.logger.Error("send failed: receiver not registered", "receiver", msg.Receiver)
		return core.NewNotFoundError("receiver agent", msg.Receiver).ToResult()
	}
	if receiver.Status == StatusOffline {
		p.logger.Error("send failed: receiver offline", "receiver", msg.Receiver)
		return core.NewUnavailableError(msg.Receiver).ToResult()
	}

	p.logger.Info("message sent", "message_id", msg.ID, "receiver", msg.Receiver)
	return core.Success("message sent", map[string]any{
		"message_id": msg.ID,
		"timestamp":  msg.CreatedAt.Format(time.RFC3339Nano),
	})
}

// History returns the most recent limit messages, most-recent-last,
// optionally filtered to those where agentID is sender or receiver. A
// non-positive limit returns the full (filtered) history.
func (p *Protocol) History(agentID string, limit int) []Message {
	p.mu.Lock()
	defer p.mu.Unlock()

	msgs := p.history
	if agentID != "" {
		filtered := make([]Message, 0, len(msgs))
		for _, m := range msgs {
			if m.Sender == agentID || m.Receiver == agentID {
				filtered = append(filtered, m)
			}
		}
		msgs = filtered
	}
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

func clampTimeout(v int) int {
	if v < MinTimeoutSeconds {
		return MinTimeoutSeconds
	}
	if v > MaxTimeoutSeconds {
		return MaxTimeoutSeconds
	}
	return v
}

func clampRetries(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxRetryBudget {
		return MaxRetryBudget
	}
	return v
}
