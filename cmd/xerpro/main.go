package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/jjCode01/xer-pro/internal/cli"
	"github.com/jjCode01/xer-pro/internal/config"
	"github.com/jjCode01/xer-pro/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultEnvFiles...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if cfg.NoColor || !stdoutTTY {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	observers := useCaseObservers(cfg, logger)
	schedules := service.NewScheduleService(service.NewTableSource(), observers...)
	app := &cli.App{
		Analyze:     service.NewAnalyzeService(schedules, observers...),
		Compare:     service.NewCompareService(schedules, observers...),
		Config:      cfg,
		Interactive: isatty.IsTerminal(os.Stderr.Fd()),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// useCaseObservers logs use case events through logger when LogCalls is set.
// Successful calls are logged at info level.
func useCaseObservers(cfg *config.Config, logger *slog.Logger) []service.UseCaseObserver {
	if !cfg.LogCalls {
		return nil
	}
	return []service.UseCaseObserver{service.NewSlogUseCaseObserver(logger)}
}
