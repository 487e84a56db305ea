// Command parity computes sum(A·B + D) with ourtorch and with the
// gorgonia and gonum references, and exits non-zero unless they agree to
// five decimal places.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/csotherden/ourtorch/parity"
)

func newRootCmd(f parity.Fixture) *cobra.Command {
	return &cobra.Command{
		Use:           "parity",
		Short:         "Check ourtorch against reference tensor libraries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			rep, err := parity.Compare(cmd.Context(), f, parity.WithLogger(logger))
			// A failure before any reference ran leaves nothing worth printing.
			if err == nil || len(rep.References) > 0 {
				printReport(cmd.OutOrStdout(), rep)
			}
			return err
		},
	}
}

func printReport(w io.Writer, rep parity.Report) {
	row := func(name string, value, rounded float64) []string {
		return []string{
			name,
			strconv.FormatFloat(value, 'f', 9, 64),
			strconv.FormatFloat(rounded, 'f', rep.Places, 64),
		}
	}

	data := [][]string{row("ourtorch", rep.Ours, rep.Rounded)}
	for _, r := range rep.References {
		data = append(data, row(r.Name, r.Value, r.Rounded))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"IMPL", "VALUE", "ROUNDED"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

func main() {
	if err := newRootCmd(parity.DefaultFixture()).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
