// Package cli defines the layoutcheck command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Command names a layoutcheck subcommand.
type Command string

const (
	CommandCheck   Command = "check"
	CommandDoctor  Command = "doctor"
	CommandVersion Command = "version"
)

// Parsed is the resolved invocation handed to the application.
type Parsed struct {
	Command    Command
	ConfigPath string
}

// RunFunc executes one parsed invocation and returns the process exit code.
type RunFunc func(ctx context.Context, parsed Parsed) int

// NewRootCommand builds the command tree. Running the root without a
// subcommand performs the setup check. The exit code of whichever command
// ran is stored in exitCode.
func NewRootCommand(binaryName string, versionText string, run RunFunc, exitCode *int) *cobra.Command {
	var configPath string

	invoke := func(command Command) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			*exitCode = run(cmd.Context(), Parsed{Command: command, ConfigPath: configPath})
			return nil
		}
	}

	root := &cobra.Command{
		Use:   binaryName,
		Short: "Check that the i3 alternating layout setup is working",
		Long: `Connects to the running i3 (or sway) session over IPC, reports the focused
workspace, and checks whether the alternating layout script is running.

Exit status is 1 when the window manager cannot be reached, 2 for usage or
configuration errors, 0 otherwise.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       versionText,
		RunE:          invoke(CommandCheck),
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: $XDG_CONFIG_HOME/layoutcheck/config.yaml)")

	root.AddCommand(&cobra.Command{
		Use:   string(CommandCheck),
		Short: "Run the setup check (default)",
		Args:  cobra.NoArgs,
		RunE:  invoke(CommandCheck),
	})
	root.AddCommand(&cobra.Command{
		Use:   string(CommandDoctor),
		Short: "Run environment and installation checks",
		Args:  cobra.NoArgs,
		RunE:  invoke(CommandDoctor),
	})
	root.AddCommand(&cobra.Command{
		Use:   string(CommandVersion),
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE:  invoke(CommandVersion),
	})

	return root
}
