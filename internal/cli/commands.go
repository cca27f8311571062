package cli

import (
	"os"

	"github.com/rileyhilliard/pnodemon/internal/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Command-specific flags
var (
	initForce          bool
	initNonInteractive bool
)

// initCmd creates a new .pnodemon.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .pnodemon.yaml configuration",
	Long: `Write a .pnodemon.yaml file in the current directory with the
built-in sample nodes and default settings, ready to edit.

Asks before overwriting an existing file unless --force is given.

Examples:
  pnodemon init
  pnodemon init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Overwrite:      initForce,
			NonInteractive: initNonInteractive || os.Getenv("CI") != "" || !term.IsTerminal(int(os.Stdin.Fd())),
			Out:            cmd.OutOrStdout(),
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for pnodemon.

Examples:
  # Bash
  pnodemon completion bash > /etc/bash_completion.d/pnodemon

  # Zsh
  pnodemon completion zsh > "${fpath[1]}/_pnodemon"

  # Fish
  pnodemon completion fish > ~/.config/fish/completions/pnodemon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "never prompt; fail if the config exists")

	// Register all commands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
