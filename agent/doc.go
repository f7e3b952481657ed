// Package agent contains the units of work that turn structured input into
// generated artifacts, plus the Manager that owns them.
//
// Every agent self-registers its capabilities into the shared a2a.Registry at
// construction time. Execute validates the agent-specific required fields,
// builds a prompt and invokes the generation collaborator; every failure mode
// is reported as a structured result, never as a raised fault.
package agent
