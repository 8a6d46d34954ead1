package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/yildizm/osanpo/internal/emoji"
)

var (
	cfgFile string
	verbose bool
	noColor bool
	noEmoji bool
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	var (
		screen      string
		pet         int
		watchConfig bool
	)

	rootCmd := &cobra.Command{
		Use:   "osanpo",
		Short: "Pet walk notebook for the terminal",
		Long: `osanpo (おさんぽ手帳) is a pet walk notebook for the terminal.

Running it without a subcommand opens the interactive app: a dashboard of your
pets and today's walks, a walk recorder, the walk history, weekly stats and
settings, switched with the navigation bar at the bottom.

Use "osanpo show" to print a screen without the interactive app.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			// Set emoji state for all components
			emoji.SetEmojiDisabled(noEmoji)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, tuiFlags{
				screen:      screen,
				screenSet:   cmd.Flags().Changed("screen"),
				pet:         pet,
				petSet:      cmd.Flags().Changed("pet"),
				watchConfig: watchConfig,
			})
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")

	// Interactive app flags
	rootCmd.Flags().StringVar(&screen, "screen", "", "initial screen (dashboard, history, record, stats, settings)")
	rootCmd.Flags().IntVar(&pet, "pet", 0, "index of the initially selected pet")
	rootCmd.Flags().BoolVar(&watchConfig, "watch-config", false, "reload theme, language and emoji settings when the config file changes")

	// Add subcommands
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	var short bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Print the osanpo version, build commit and date, and the Go runtime it was built with",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, buildLabel(version, "dev", "development"))
				return
			}
			fmt.Fprintf(out, "osanpo %s (%s) built on %s\n",
				buildLabel(version, "dev", "development"),
				buildLabel(commit, "none", "local-build"),
				buildLabel(date, "unknown", "local-build"))
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	versionCmd.Flags().BoolVar(&short, "short", false, "print only the version number")

	return versionCmd
}

// buildLabel replaces an unset ldflags placeholder
func buildLabel(value, placeholder, fallback string) string {
	if value == "" || value == placeholder {
		return fallback
	}
	return value
}

// Global helpers
func isVerbose() bool {
	return verbose
}

func isEmojiDisabled() bool {
	return noEmoji
}
