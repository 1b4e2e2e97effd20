package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"mondclock/cmd/mond/ui"
	"mondclock/internal/clock"
	"mondclock/internal/config"
	"mondclock/internal/display"
	"mondclock/internal/schedule"
	"mondclock/internal/widget"
)

const version = "1.0.0"

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mond",
	Short: "mond - the Mond clock widget for the terminal",
	Long: `mond renders a live clock widget: weekday name, long date, and
12-hour time, re-rendered on every minute boundary.

Run without arguments to display the widget. It fills the terminal and runs
until you quit with q or ctrl+c.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if cfg.Logging.Format == "text" {
			zcfg.Encoding = "console"
		}
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWidget()
	},
}

// onceCmd renders a single snapshot without the TUI, for quick checks and
// for scripting.
var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Render one clock snapshot to stdout and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := widget.At(clock.NewSystem().Now())
		fmt.Fprintln(cmd.OutOrStdout(), snap.Weekday)
		fmt.Fprintln(cmd.OutOrStdout(), snap.Date)
		fmt.Fprintln(cmd.OutOrStdout(), snap.Time)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mond version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mond %s\n", version)
	},
}

// runWidget wires the render pipeline to the terminal display host and
// blocks until the user quits or the process is signaled.
func runWidget() error {
	board := display.NewBoard(widget.SlotDay, widget.SlotDate, widget.SlotTime)
	renderer := widget.NewRenderer(clock.NewSystem(), board, logger)

	loop := schedule.NewLoop(func() { renderer.Render() },
		schedule.WithLogger(logger))
	loop.Start()
	defer loop.Stop()
	logger.Info("clock widget started", zap.String("theme", cfg.Theme))

	prog := tea.NewProgram(ui.NewModel(board, ui.ThemeByName(cfg.Theme)),
		tea.WithAltScreen())

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := prog.Run()
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		prog.Quit()
		return nil
	})

	return g.Wait()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "mond.yaml",
		"path to the config file")

	rootCmd.AddCommand(onceCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
