package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/pnodemon/internal/errors"
	"github.com/rileyhilliard/pnodemon/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// monitorOpts collects the dashboard flags on the root command.
var monitorOpts MonitorOptions

// rootCmd runs the dashboard when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "pnodemon",
	Short: "Simulated Xandeum pNode monitoring dashboard",
	Long: `Show a live table of Xandeum storage nodes (pNodes) in the terminal.

Node data is simulated: online and syncing nodes drift in latency on
every tick, offline nodes stay put. Nodes come from .pnodemon.yaml or a
built-in sample of five.

Keyboard shortcuts:
  q / Ctrl+C  Quit

Examples:
  pnodemon
  pnodemon --interval 1s
  pnodemon --seed 42 --log-file ~/pnodemon.log --debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := monitorOpts
		opts.ConfigPath = cfgFile
		return monitorCommand(opts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .pnodemon.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Flags().StringVar(&monitorOpts.Interval, "interval", "", "tick interval (e.g., 250ms, 1s); overrides tick_interval")
	rootCmd.Flags().Uint64Var(&monitorOpts.Seed, "seed", 0, "seed for latency jitter (0 picks a random seed)")
	rootCmd.Flags().StringVar(&monitorOpts.LogFile, "log-file", "", "write JSON logs to this file; overrides log_file")
	rootCmd.Flags().BoolVar(&monitorOpts.Debug, "debug", false, "log debug messages (implies a log file)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	printError(os.Stderr, err)
	os.Exit(errors.ExitCode(err))
}

// printError writes err in the structured "✗ what / why / fix" layout.
func printError(w io.Writer, err error) {
	var pmErr *errors.Error
	switch {
	case stderrors.As(err, &pmErr):
		fmt.Fprint(w, pmErr.Error())
	case isUnknownCommandError(err):
		name := extractUnknownCommand(err)
		msg := err.Error()
		if name != "" {
			msg = fmt.Sprintf("Unknown command: %s", name)
		}
		fmt.Fprint(w, errors.New(errors.ErrExec, msg, "Run 'pnodemon --help' to see available commands.").Error())
	default:
		fmt.Fprint(w, errors.Wrap(err, "pnodemon failed").Error())
	}
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "pnodemon"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
