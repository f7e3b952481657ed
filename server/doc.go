// Package server exposes the coordination layer over HTTP. It wires an echo
// server with request-id, logging, rate-limit and CORS middleware, and maps
// every handler outcome from a core.Result: success and partial_success
// render as 200, error as 500. The handlers never surface Go errors to the
// client beyond that mapping.
package server
