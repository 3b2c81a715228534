package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jjCode01/xer-pro/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App, flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file> [previous-file]",
		Short: "Write the analysis, or the comparison of two files, to an Excel workbook",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = defaultExportPath(args)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			if err := writeExport(cmd, app, flags, args, f); err != nil {
				f.Close()
				os.Remove(output)
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Workbook path (default <file>.xlsx)")
	return cmd
}

func writeExport(cmd *cobra.Command, app *App, flags *globalFlags, args []string, f *os.File) error {
	if len(args) == 2 {
		req, err := flags.compareRequest(args[0], args[1])
		if err != nil {
			return err
		}
		resp, err := app.Compare.Compare(cmd.Context(), req)
		if err != nil {
			return err
		}
		return export.WriteComparison(f, resp)
	}

	req, err := flags.analyzeRequest(app, args[0])
	if err != nil {
		return err
	}
	req.IncludeWarnings = true
	req.IncludeCashFlow = true
	req.IncludeWorkFlow = true
	resp, err := runAnalyze(cmd, app, req)
	if err != nil {
		return err
	}
	return export.WriteAnalysis(f, resp)
}

func defaultExportPath(args []string) string {
	base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
	if len(args) == 2 {
		return base + "-compare.xlsx"
	}
	return base + ".xlsx"
}
