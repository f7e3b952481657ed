// Package a2a implements the in-process agent-to-agent coordination
// primitives: capability descriptors, the process-wide agent registry and the
// message protocol with its append-only history.
//
// The protocol is a register/acknowledge handshake, not a transport: sending
// a message validates the receiver and records the exchange, while actual
// execution is dispatched separately through the agent manager. All types are
// safe for concurrent use; registry mutations and history appends are atomic
// with respect to concurrent readers.
package a2a
