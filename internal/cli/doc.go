// Package cli implements the pnodemon command-line interface.
//
// # Command Structure
//
// The root command runs the dashboard. Subcommands cover setup and
// housekeeping:
//
//	pnodemon              - Run the dashboard until q or Ctrl+C
//	pnodemon init         - Create .pnodemon.yaml with the sample nodes
//	pnodemon version      - Print build information
//	pnodemon completion   - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command and
// available to all subcommands. Dashboard flags (--interval, --seed,
// --log-file, --debug) override the matching config keys for one run.
//
// # Exit Codes
//
// Execute exits 0 after a normal quit and 1 on any error. The terminal is
// always restored before an error is printed.
package cli
