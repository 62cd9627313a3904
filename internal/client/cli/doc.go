// Package cli provides the interactive TimeFlux command-line client.
//
// It wires configuration, the local key/value store, the holiday cache and
// the custom event store into an interactive REPL that renders upcoming
// holidays and personal events as live countdowns.
//
// Key features:
//   - List the merged timeline under a selectable sort order
//   - Add / remove personal countdown events
//   - Force-refresh the holiday cache
//   - Watch the timeline update on the shared one-second "now" snapshot
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// A cron-driven background task re-checks holiday cache freshness while the
// REPL runs. See App, StartBackgroundTasks, and runREPL for details.
package cli
