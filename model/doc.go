// Package model defines the generation collaborator boundary: a minimal
// Generator interface (prompt in, text out) plus a deterministic mock for
// tests. Provider adapters live in the openai and anthropic subpackages.
package model
