// Package core provides the foundational domain types shared by every layer
// of WhereEatAI. It defines:
//
//   - Input (the loosely-typed request payload handed to agents and workflows)
//   - Result (the uniform status envelope every public operation returns)
//   - Error (the recoverable error taxonomy: validation, not-found,
//     unavailable, collaborator fault)
//   - Workflow (the minimal contract the Agent Manager dispatches to)
//
// The package intentionally keeps implementation concerns (registry,
// protocol, concrete agents, HTTP) out of scope so that higher packages can
// depend on it without cycles.
package core
