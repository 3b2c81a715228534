package cli

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jjCode01/xer-pro/internal/calendar"
	"github.com/jjCode01/xer-pro/internal/cli/formatter"
	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/warning"
	"github.com/spf13/cobra"
)

const dateFlagLayout = "2006-01-02"

// runAnalyze calls the analyze service, with a spinner on interactive
// terminals.
func runAnalyze(cmd *cobra.Command, app *App, req contract.AnalyzeRequest) (*contract.AnalyzeResponse, error) {
	if app.Interactive {
		stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Reading "+req.Source.Path)
		defer stop()
	}
	return app.Analyze.Analyze(cmd.Context(), req)
}

func newSummaryCmd(app *App, flags *globalFlags) *cobra.Command {
	var showWbs bool

	cmd := &cobra.Command{
		Use:   "summary <file>",
		Short: "Show dates, progress, float and cost of a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.analyzeRequest(app, args[0])
			if err != nil {
				return err
			}
			req.IncludeWarnings = true

			resp, err := runAnalyze(cmd, app, req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(resp))
			if showWbs {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWbs(resp.Schedule))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showWbs, "wbs", false, "Also print the WBS tree")
	return cmd
}

func newWarningsCmd(app *App, flags *globalFlags) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "warnings <file>",
		Short: "Run schedule quality checks",
		Long:  "Run schedule quality checks. Checks: " + kindList() + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(only)
			if err != nil {
				return err
			}
			req, err := flags.analyzeRequest(app, args[0])
			if err != nil {
				return err
			}
			req.IncludeWarnings = true

			resp, err := runAnalyze(cmd, app, req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWarnings(resp.Warnings, kinds...))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "Detail only these checks")
	return cmd
}

func parseKinds(names []string) ([]warning.Kind, error) {
	kinds := make([]warning.Kind, 0, len(names))
	for _, name := range names {
		k := warning.Kind(strings.TrimSpace(name))
		if !slices.Contains(warning.Kinds, k) {
			return nil, fmt.Errorf("unknown check %q (valid: %s)", name, kindList())
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func kindList() string {
	names := make([]string, len(warning.Kinds))
	for i, k := range warning.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func newCashFlowCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cashflow <file>",
		Short: "Show resource cost distributed by month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.analyzeRequest(app, args[0])
			if err != nil {
				return err
			}
			req.IncludeCashFlow = true

			resp, err := runAnalyze(cmd, app, req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCashFlow(resp.CashFlow, resp.CashFlowErr))
			return nil
		},
	}
}

func newWorkFlowCmd(app *App, flags *globalFlags) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "workflow <file>",
		Short: "Count activity starts and finishes by month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.analyzeRequest(app, args[0])
			if err != nil {
				return err
			}
			req.IncludeWorkFlow = true
			if req.WorkFlowStart, err = parseDateFlag("from", from); err != nil {
				return err
			}
			if req.WorkFlowEnd, err = parseDateFlag("to", to); err != nil {
				return err
			}

			resp, err := runAnalyze(cmd, app, req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWorkFlow(resp.WorkFlow))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day to count (YYYY-MM-DD, default schedule start)")
	cmd.Flags().StringVar(&to, "to", "", "Last day to count (YYYY-MM-DD, default schedule finish)")
	return cmd
}

func newCalendarsCmd(app *App, flags *globalFlags) *cobra.Command {
	var name, from string

	cmd := &cobra.Command{
		Use:   "calendars <file>",
		Short: "List calendars, or show one calendar in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			since, err := parseDateFlag("from", from)
			if err != nil {
				return err
			}
			req, err := flags.analyzeRequest(app, args[0])
			if err != nil {
				return err
			}

			resp, err := runAnalyze(cmd, app, req)
			if err != nil {
				return err
			}

			cals := resp.Schedule.Calendars()
			if name == "" {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendars(cals))
				return nil
			}
			cal := findCalendar(cals, name)
			if cal == nil {
				return fmt.Errorf("calendar %q not found", name)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(cal, since))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Show the calendar with this name or id")
	cmd.Flags().StringVar(&from, "from", "", "Hide holidays and exceptions before this date (YYYY-MM-DD)")
	return cmd
}

func findCalendar(cals []*calendar.Calendar, ref string) *calendar.Calendar {
	for _, c := range cals {
		if c.ID == ref {
			return c
		}
	}
	for _, c := range cals {
		if strings.EqualFold(c.Name, ref) {
			return c
		}
	}
	return nil
}

func newWbsCmd(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "wbs <file>",
		Short: "Show the work breakdown structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.analyzeRequest(app, args[0])
			if err != nil {
				return err
			}

			resp, err := runAnalyze(cmd, app, req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWbs(resp.Schedule))
			return nil
		},
	}
}

func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFlagLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q: expected YYYY-MM-DD", name, value)
	}
	return t, nil
}
