package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/osanpo/internal/formatter"
	"github.com/yildizm/osanpo/internal/logger"
	"github.com/yildizm/osanpo/internal/ui"
	"github.com/yildizm/osanpo/internal/walk"
)

// newShowCommand creates the show command
func newShowCommand() *cobra.Command {
	var (
		outputFmt string
		pet       int
	)

	showCmd := &cobra.Command{
		Use:   "show [screen]",
		Short: "Print a screen without the interactive app",
		Long: `Print one screen's data to stdout.

Screens: ` + strings.Join(ui.ScreenNames(), ", ") + `. Unknown screens print the
dashboard. CSV output lists walks for history, per-pet rows for stats and
section/key/value rows for everything else.`,
		Example: `  # Show the dashboard
  osanpo show

  # Walk history as CSV
  osanpo show history -o csv

  # Weekly stats as Markdown
  osanpo show stats --output markdown`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: ui.ScreenNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg, cmd.ErrOrStderr()).WithComponent("show")

			name := cfg.UI.InitialScreen
			if len(args) == 1 {
				name = args[0]
			}
			screen, ok := ui.ParseScreen(name)
			if !ok && name != "" {
				log.Warn("unknown screen %q, showing dashboard", name)
			}

			format := cfg.Output.DefaultFormat
			if cmd.Flags().Changed("output") {
				format = outputFmt
			}
			f, err := formatter.New(format, cfg.UI.ColorMode != "never")
			if err != nil {
				return err
			}

			opts := ui.OptionsFromConfig(cfg)
			opts.InitialScreen = screen.String()
			opts.SelectedPet = pet
			opts.Logger = log
			snap := ui.New(walk.NewCatalog(), opts).Snapshot()

			out, err := f.Format(snap)
			if err != nil {
				return fmt.Errorf("failed to format %s: %w", screen, err)
			}

			log.DebugWithFields("rendered", []logger.Field{logger.Screen(screen.String()), logger.F("format", format)})
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	showCmd.Flags().StringVarP(&outputFmt, "output", "o", "text", "output format (text, json, markdown, csv)")
	showCmd.Flags().IntVar(&pet, "pet", 0, "index of the selected pet")

	return showCmd
}
