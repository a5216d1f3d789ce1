/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package entry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/kakeibo/cmd/cmdutil"
	"github.com/xiaomi388/kakeibo/pkg/ledger"
	"github.com/xiaomi388/kakeibo/pkg/types"
)

var (
	description string
	amount      float64
	category    string
)

// AddCmd represents the add command
var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "add a ledger entry",
}

var addIncomeCmd = &cobra.Command{
	Use:   "income",
	Short: "add an income entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := ledger.NewIncome(description, amount)
		if err != nil {
			return err
		}
		return add(cmd, e)
	},
}

var addExpenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "add an expense entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := ledger.NewExpense(description, amount, types.Category(category))
		if err != nil {
			return err
		}
		return add(cmd, e)
	},
}

var RemoveCmd = &cobra.Command{
	Use:   "remove INDEX",
	Short: "remove the ledger entry at INDEX",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[0], err)
		}

		return withBook(func(book *ledger.Book) error {
			removed, err := book.Remove(index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q (%v).\n", removed.Description, removed.Amount)
			return nil
		})
	},
}

var MoveCmd = &cobra.Command{
	Use:   "move FROM TO",
	Short: "move the ledger entry at FROM to TO",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[0], err)
		}
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}

		return withBook(func(book *ledger.Book) error {
			return book.Move(from, to)
		})
	},
}

var ResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "remove every ledger entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withBook(func(book *ledger.Book) error {
			return book.Reset()
		})
	},
}

func init() {
	AddCmd.PersistentFlags().StringVar(&description, "desc", "", "description of the entry")
	_ = AddCmd.MarkPersistentFlagRequired("desc")

	AddCmd.PersistentFlags().Float64Var(&amount, "amount", 0, "amount of the entry")
	_ = AddCmd.MarkPersistentFlagRequired("amount")

	addExpenseCmd.Flags().StringVar(&category, "category", string(types.CategoryUncategorized),
		fmt.Sprintf("expense category (one of %s)", categoryNames(types.ExpenseCategories())))

	AddCmd.AddCommand(addIncomeCmd)
	AddCmd.AddCommand(addExpenseCmd)
}

func add(cmd *cobra.Command, e types.Entry) error {
	return withBook(func(book *ledger.Book) error {
		if err := book.Add(e); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %q %v (%s).\n", e.Description, e.Amount, e.Category)
		return nil
	})
}

func withBook(fn func(book *ledger.Book) error) error {
	backend, err := cmdutil.OpenBackend()
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer backend.Close()

	return fn(ledger.NewBook(backend))
}

func categoryNames(cats []types.Category) string {
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
