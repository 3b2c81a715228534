package cli

import (
	"fmt"

	"github.com/jjCode01/xer-pro/internal/app"
	"github.com/jjCode01/xer-pro/internal/config"
	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/importer"
	"github.com/spf13/cobra"
)

// App holds the use cases and settings used by CLI commands.
type App struct {
	Analyze app.AnalyzeUseCase
	Compare app.CompareUseCase
	Config  *config.Config

	// Interactive enables the loading spinner on stderr.
	Interactive bool
}

// globalFlags are shared by every command that reads a schedule.
type globalFlags struct {
	project      string
	encoding     string
	nearCritical int
	highFloat    int
}

// NewRootCmd creates the top-level "xerpro" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Config == nil {
		app.Config = config.Default()
	}
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "xerpro",
		Short:         "Analyze and compare Primavera P6 schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.project, "project", "", "Project id or short name to read from a multi-project database")
	pf.StringVar(&flags.encoding, "encoding", app.Config.Encoding, "Character encoding of .xer files (cp1252 or utf-8)")
	pf.IntVar(&flags.nearCritical, "near-critical", app.Config.Thresholds.NearCriticalDays, "Total float in work days up to which a task is near critical")
	pf.IntVar(&flags.highFloat, "high-float", app.Config.Thresholds.HighFloatDays, "Total float in work days from which a task has high float")

	root.AddCommand(
		newSummaryCmd(app, flags),
		newWarningsCmd(app, flags),
		newCashFlowCmd(app, flags),
		newWorkFlowCmd(app, flags),
		newCalendarsCmd(app, flags),
		newWbsCmd(app, flags),
		newCompareCmd(app, flags),
		newExportCmd(app, flags),
	)

	return root
}

func (f *globalFlags) source(path string) (contract.Source, error) {
	src := contract.NewSource(path)
	enc, err := importer.ParseEncoding(f.encoding)
	if err != nil {
		return src, err
	}
	src.Encoding = enc
	src.Project = f.project
	return src, nil
}

// analyzeRequest builds a request with every optional report switched off;
// commands enable what they print.
func (f *globalFlags) analyzeRequest(app *App, path string) (contract.AnalyzeRequest, error) {
	req := contract.NewAnalyzeRequest(path)
	src, err := f.source(path)
	if err != nil {
		return req, err
	}
	req.Source = src
	req.Warnings = app.Config.WarningOptions()
	req.FloatThresholds.NearCritical = f.nearCritical
	req.FloatThresholds.HighFloat = f.highFloat
	if req.FloatThresholds.HighFloat <= req.FloatThresholds.NearCritical {
		return req, fmt.Errorf("--high-float (%d) must exceed --near-critical (%d)", f.highFloat, f.nearCritical)
	}
	req.IncludeWarnings = false
	req.IncludeCashFlow = false
	req.IncludeWorkFlow = false
	return req, nil
}

func (f *globalFlags) compareRequest(first, second string) (contract.CompareRequest, error) {
	req := contract.NewCompareRequest(first, second)
	var err error
	if req.First, err = f.source(first); err != nil {
		return req, err
	}
	if req.Second, err = f.source(second); err != nil {
		return req, err
	}
	req.FloatThresholds.NearCritical = f.nearCritical
	req.FloatThresholds.HighFloat = f.highFloat
	if req.FloatThresholds.HighFloat <= req.FloatThresholds.NearCritical {
		return req, fmt.Errorf("--high-float (%d) must exceed --near-critical (%d)", f.highFloat, f.nearCritical)
	}
	return req, nil
}
