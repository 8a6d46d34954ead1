package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/yildizm/osanpo/internal/config"
	"github.com/yildizm/osanpo/internal/emoji"
	"github.com/yildizm/osanpo/internal/logger"
	"github.com/yildizm/osanpo/internal/ui"
	"github.com/yildizm/osanpo/internal/walk"
)

// tuiFlags are the root command flags that shape the interactive app
type tuiFlags struct {
	screen      string
	screenSet   bool
	pet         int
	petSet      bool
	watchConfig bool
}

// loadConfig loads the config and folds the global flags into it
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if isEmojiDisabled() {
		cfg.UI.Emoji = false
	}
	if noColor {
		cfg.UI.ColorMode = "never"
	}
	if isVerbose() {
		cfg.Logging.Verbose = true
	}

	emoji.SetEmojiDisabled(!cfg.UI.Emoji)
	ui.ApplyColorMode(cfg.UI.ColorMode)
	return cfg, nil
}

// newLogger creates the session logger. Every line carries a fresh session id.
func newLogger(cfg *config.Config, w io.Writer) *logger.Logger {
	verboseLogging := cfg.Logging.Verbose
	log := logger.NewWithCallback("cli", func() bool { return verboseLogging }).
		With(logger.Session(uuid.NewString()))
	log.SetOutput(w)
	return log
}

// openLogFile opens the configured log file. The TUI owns the terminal, so
// without a usable file the log is dropped.
func openLogFile(cfg *config.Config) (io.Writer, func()) {
	if cfg.Logging.File == "" {
		return io.Discard, func() {}
	}

	f, err := logger.OpenFile(config.ExpandPath(cfg.Logging.File))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", statusLine("warning", err.Error()))
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}

// runTUI launches the interactive app
func runTUI(cmd *cobra.Command, flags tuiFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w, closeLog := openLogFile(cfg)
	defer closeLog()
	log := newLogger(cfg, w)

	opts := ui.OptionsFromConfig(cfg)
	opts.Logger = log
	opts.NoEmoji = isEmojiDisabled()
	if flags.screenSet {
		opts.InitialScreen = flags.screen
	}
	if flags.petSet {
		opts.SelectedPet = flags.pet
	}

	if flags.watchConfig {
		stop, err := watchConfig(cmd.Context(), log, &opts)
		if err != nil {
			return err
		}
		defer stop()
	}

	log.InfoWithFields("starting", []logger.Field{
		logger.Screen(opts.InitialScreen),
		logger.F("theme", cfg.UI.Theme),
		logger.F("live_timer", cfg.Record.LiveTimer),
	})

	start := time.Now()
	err = ui.Run(walk.NewCatalog(), opts)
	if err != nil {
		log.WarnWithFields("interactive app failed", []logger.Field{logger.Error(err)})
		return fmt.Errorf("interactive app failed: %w", err)
	}

	log.InfoWithFields("finished", []logger.Field{logger.Duration(time.Since(start))})
	return nil
}

// watchConfig starts the config watcher and hands its updates to the app
func watchConfig(ctx context.Context, log *logger.Logger, opts *ui.Options) (func(), error) {
	loader := config.NewLoader()
	if _, found := loader.ResolvePath(cfgFile); !found {
		log.Warn("no config file found, --watch-config has nothing to watch")
		return func() {}, nil
	}

	watcher, err := loader.Watch(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to watch config: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		if err := watcher.Run(ctx); err != nil {
			log.WarnWithFields("config watcher stopped", []logger.Field{logger.Error(err)})
		}
	}()

	opts.Reloads = watcher.Updates()
	log.Info("watching %s", watcher.Path())

	return func() {
		cancel()
		_ = watcher.Close()
	}, nil
}
