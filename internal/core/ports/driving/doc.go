// Package driving defines the interfaces through which external actors
// (CLI, MCP server, schedulers) invoke core operations.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
package driving
