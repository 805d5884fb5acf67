// Package viz provides terminal-based visualization for generated signal
// streams.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live stream view with per-channel sparklines and running stats
//   - [Browser]: preset picker that launches the live view
//
// # Key Bindings
//
//	Space - Pause/Resume the stream
//	R     - Reset accumulated statistics
//	M     - Switch generation mode
//	Tab   - Cycle the focused channel
//	Up/Dn - Tune cluster strength or noise amplitude
//	?     - Show help overlay
//
// The live view regenerates a small chunk of signals on every tick, so the
// sparklines show the latest chunk while the stats panel accumulates over
// the whole session.
package viz
