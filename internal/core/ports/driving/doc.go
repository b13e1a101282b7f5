// Package driving defines the driving (primary) ports: interfaces the
// core exposes to external actors.
//
// The CLI and TUI adapters in internal/adapters/driving consume these
// ports; they never reach into the services directly.
package driving
