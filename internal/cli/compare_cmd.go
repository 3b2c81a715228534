package cli

import (
	"fmt"

	"github.com/jjCode01/xer-pro/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const compareLong = `Report changes between two updates of a schedule.

The files may be given in any order; the one with the later data date is
treated as current.`

func newCompareCmd(app *App, flags *globalFlags) *cobra.Command {
	var detail bool

	cmd := &cobra.Command{
		Use:   "compare <file> <file>",
		Short: "Report changes between two updates of a schedule",
		Long:  compareLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.compareRequest(args[0], args[1])
			if err != nil {
				return err
			}

			if app.Interactive {
				stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Comparing schedules")
				defer stop()
			}
			resp, err := app.Compare.Compare(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatComparison(resp, detail))
			return nil
		},
	}

	cmd.Flags().BoolVar(&detail, "detail", false, "List every change")
	return cmd
}
