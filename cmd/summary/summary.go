/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package summary

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/xiaomi388/kakeibo/cmd/cmdutil"
	"github.com/xiaomi388/kakeibo/pkg/ledger"
	"github.com/xiaomi388/kakeibo/pkg/types"
)

// SummaryCmd prints the ledger entries and totals.
var SummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "print ledger entries, expenses per category and the residual",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		backend, err := cmdutil.OpenBackend()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		defer backend.Close()

		entries, err := ledger.NewBook(backend).Entries()
		if err != nil {
			return err
		}

		render(cmd.OutOrStdout(), entries, ledger.Summarize(entries))
		return nil
	},
}

func render(out io.Writer, entries []types.Entry, summary ledger.Summary) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Description", "Amount", "Category"})
	for i, e := range entries {
		table.Append([]string{fmt.Sprint(i), e.Description, money(e.Amount), string(e.Category)})
	}
	table.Render()

	totals := tablewriter.NewWriter(out)
	totals.SetAutoFormatHeaders(false)
	totals.SetHeader([]string{"Total", "Amount"})
	totals.Append([]string{string(types.CategoryIncome), money(summary.Income)})

	cats := maps.Keys(summary.Expenses)
	slices.Sort(cats)
	for _, cat := range cats {
		totals.Append([]string{string(cat), money(summary.Expenses[cat])})
	}
	totals.SetFooter([]string{"Residual", money(summary.Residual())})
	totals.Render()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
