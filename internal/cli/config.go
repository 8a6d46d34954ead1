package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/go-termfmt"
	"github.com/yildizm/osanpo/internal/config"
	"github.com/yildizm/osanpo/internal/emoji"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".osanpo.yaml"

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage osanpo configuration",
		Long: `Create, inspect and check osanpo configuration files.

Settings are layered: built-in defaults, then the config files found on the
search path, then ` + config.EnvPrefix + `* environment variables, then flags.`,
	}

	configCmd.AddCommand(
		newConfigInitCommand(),
		newConfigShowCommand(),
		newConfigValidateCommand(),
		newConfigPathCommand(),
	)

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Write a starter configuration file.

The full template documents every option. --minimal writes only the settings
people usually change: theme, language and the record screen toggles.`,
		Example: `  osanpo config init
  osanpo config init --minimal
  osanpo config init --output ~/.config/osanpo/config.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ExpandPath(outputPath)
			if err := writeSample(path, minimal, force); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, statusLine("success", "Configuration file created at: "+path))
			if minimal {
				fmt.Fprintln(out, "Only the common settings were written; everything else uses defaults")
			} else {
				fmt.Fprintln(out, "Every option is listed with its default value")
			}
			return nil
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "output", "o", defaultConfigFile, "where to write the config file")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "write only the common settings")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return initCmd
}

// writeSample writes a template to path, creating parent directories
func writeSample(path string, minimal, force bool) error {
	if !force && fileExists(path) {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	content := config.SampleConfig()
	if minimal {
		content = config.MinimalSampleConfig()
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration osanpo would run with, after defaults, files and
environment variables have been merged.`,
		Example: `  osanpo config show
  osanpo config show --format json
  osanpo --config ./walks.yaml config show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			data, err := marshalConfig(cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")

	return showCmd
}

func marshalConfig(cfg *config.Config, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		return data, nil
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use json or yaml)", format)
	}
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration for errors",
		Long: `Load the configuration and report whether osanpo accepts it.

The check covers YAML syntax, the theme, language, color mode and output
format names, and the record screen tick interval.`,
		Example: `  osanpo config validate
  osanpo --config ./walks.yaml config validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			loader := config.NewLoader()
			cfg, err := loader.LoadConfig(cfgFile)
			if err != nil {
				fmt.Fprintln(out, statusLine("error", "Configuration validation failed:"))
				fmt.Fprintf(out, "   %v\n", err)
				return err
			}

			fmt.Fprintln(out, statusLine("success", "Configuration is valid"))
			writeSummary(out, cfg, loader.Sources())
			return nil
		},
	}
}

// writeSummary prints the settings that change what the app looks like
func writeSummary(w io.Writer, cfg *config.Config, sources []string) {
	opts := termfmt.DefaultOptions()
	opts.Color = !noColor
	opts.Emoji = !emoji.IsEmojiDisabled()

	from := "defaults only"
	if len(sources) > 0 {
		from = strings.Join(sources, ", ")
	}

	items := []termfmt.TreeItem{
		{Label: "Version", Value: cfg.Version},
		{Label: "Theme", Value: cfg.UI.Theme},
		{Label: "Language", Value: cfg.UI.Language},
		{Label: "Start Screen", Value: cfg.UI.InitialScreen},
		{Label: "Live Timer", Value: fmt.Sprintf("%v (every %s)", cfg.Record.LiveTimer, cfg.Record.TickInterval)},
		{Label: "Output Format", Value: cfg.Output.DefaultFormat},
		{Label: "Loaded From", Value: from, Last: true},
	}
	fmt.Fprintln(w, "Configuration summary:")
	fmt.Fprintln(w, termfmt.TreeViewWithOptions(items, opts))
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show where configuration is read from",
		Long: `List the config file search path in priority order, mark which files
exist, and list the environment variables that override them.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration file search paths (highest priority first):")

			for i, path := range config.GetConfigPaths() {
				state := GetEmoji("error") + " not found"
				if fileExists(path) {
					state = GetEmoji("success") + " exists"
				}
				fmt.Fprintf(out, "  %d. %s  %s\n", i+1, path, state)
			}
			fmt.Fprintln(out)

			if current, found := config.FindConfigFile(); found {
				fmt.Fprintf(out, "Current config file: %s\n", current)
			} else {
				fmt.Fprintln(out, "No config file found, using defaults")
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, statusLine("info", "Environment variables with the "+config.EnvPrefix+" prefix override file settings:"))
			for _, name := range config.EnvVars() {
				fmt.Fprintf(out, "  %s\n", name)
			}
		},
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
