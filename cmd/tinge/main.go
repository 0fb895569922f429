package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tinge-dev/tinge"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// applyColorMode maps the --color flag to the global styling condition.
func applyColorMode(mode string) error {
	switch mode {
	case "auto":
		tinge.Whenever(tinge.ConditionDefault)
	case "always":
		tinge.Enable()
	case "never":
		tinge.Disable()
	default:
		return fmt.Errorf("invalid --color value %q: expected auto, always, or never", mode)
	}
	return nil
}

// createLogger creates a logger based on verbosity level.
// Returns a nop logger for verbosity < 2, or a styled handler logger for -vv.
func createLogger(w io.Writer, verbosity int) *slog.Logger {
	if verbosity < 2 {
		return tinge.NewNopLogger()
	}
	return slog.New(tinge.NewLogHandler(w, tinge.VerbosityToLevel(verbosity)))
}

func newRootCmd() *cobra.Command {
	var colorFlag string

	rootCmd := &cobra.Command{
		Use:           "tinge",
		Short:         "Style, inspect, and strip ANSI terminal output",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyColorMode(colorFlag)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().CountP("verbose", "v", "Enable verbose output (-v for verbose, -vv for debug)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Color output: auto, always, never")

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newStripCmd())
	rootCmd.AddCommand(newThemeCmd())

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			fmt.Fprintf(w, "version:\t%s\n", version)
			fmt.Fprintf(w, "commit:\t%s\n", commit)
			fmt.Fprintf(w, "date:\t%s\n", date)
			w.Flush()
		},
	}
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var rootCmd = newRootCmd()

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "tinge:", err)
		return 1
	}
	return 0
}
