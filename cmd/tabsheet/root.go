package main

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tabsheet/internal/config"
	"tabsheet/internal/logger"
	"tabsheet/internal/state"
	"tabsheet/internal/trace"
	"tabsheet/internal/ui"
)

// shutdownTimeout bounds the final span flush on exit.
const shutdownTimeout = 3 * time.Second

// flags holds command-line overrides. Empty or false means "keep config".
type flags struct {
	configPath  string
	tab         string
	renderer    string
	debug       bool
	noAnimation bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "tabsheet",
		Short: "Tab bar with an attached, draggable bottom sheet",
		Long: `tabsheet shows four tabs (People, Devices, Items, Me) and a bottom sheet
that can be dragged from its peek height to full height. Dragging the sheet
up hides the tab bar; dragging it back down shows it again.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.ErrOrStderr())
		},
	}
	pf := cmd.Flags()
	pf.StringVar(&f.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.StringVar(&f.tab, "tab", "", "initial tab: people, devices, items or me")
	pf.StringVar(&f.renderer, "renderer", "", "rendering strategy: auto, rich or plain")
	pf.BoolVar(&f.debug, "debug", false, "log at debug level")
	pf.BoolVar(&f.noAnimation, "no-animation", false, "jump between sheet heights instead of animating")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionString())
		},
	}
}

func versionString() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("tabsheet %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("tabsheet %s\n", version)
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if f.tab != "" {
		cfg.InitialTab = f.tab
	}
	if f.renderer != "" {
		cfg.Renderer = f.renderer
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}
	if f.noAnimation {
		cfg.Sheet.Animate = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session is everything one program run owns.
type session struct {
	id       string
	log      *logger.Logger
	exporter *trace.OTLPExporter
	app      *ui.AppModel
}

// newSession wires config into a ready-to-run app. Logging and telemetry
// failures are reported to warn and the app runs without them.
func newSession(ctx context.Context, cfg *config.Config, warn io.Writer) *session {
	s := &session{id: trace.NewSessionID()}

	log, err := logger.Open(cfg.Log.File, cfg.Log.Level, s.id)
	if err != nil {
		fmt.Fprintf(warn, "Warning: %v\n", err)
		log, _ = logger.Open("", cfg.Log.Level, s.id)
	}
	s.log = log

	exp, err := trace.NewOTLPExporter(ctx, cfg.Trace.Endpoint, cfg.Trace.ServiceName, cfg.Trace.Insecure)
	if err != nil {
		fmt.Fprintf(warn, "Warning: tracing disabled: %v\n", err)
		exp = nil
	}
	s.exporter = exp

	renderer := ui.DetectRenderer(cfg.Renderer)
	s.app = ui.NewAppModel(ui.Options{
		Coordinator: state.New(state.WithInitialTab(cfg.Tab())),
		Sheet:       cfg.SheetConfig(),
		Renderer:    renderer,
		Logger:      log.Logger,
		Recorder:    trace.NewRecorder(exp.Tracer(), s.id),
	})
	log.Info("session started",
		"version", version,
		"renderer", renderer.Name(),
		"tab", cfg.Tab(),
		"tracing", exp != nil,
	)
	return s
}

// Close flushes spans and closes the log file.
func (s *session) Close() {
	s.app.Close()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.exporter.Shutdown(ctx); err != nil {
		s.log.Warn("trace shutdown", "err", err)
	}
	s.log.Info("session ended")
	_ = s.log.Close()
}

func run(ctx context.Context, cfg *config.Config, warn io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s := newSession(ctx, cfg, warn)
	defer s.Close()

	p := tea.NewProgram(s.app.AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
