package ledger

import (
	"fmt"
	"math"

	"github.com/xiaomi388/kakeibo/pkg/types"
)

func checkEntry(description string, amount float64) error {
	if description == "" {
		return fmt.Errorf("description must not be empty")
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("amount must be a finite number, got %v", amount)
	}

	return nil
}

// NewIncome files amount as income regardless of its sign.
func NewIncome(description string, amount float64) (types.Entry, error) {
	if err := checkEntry(description, amount); err != nil {
		return types.Entry{}, err
	}

	return types.Entry{
		Description: description,
		Amount:      math.Abs(amount),
		Category:    types.CategoryIncome,
	}, nil
}

// NewExpense files amount as a negative expense. An empty category means Uncategorized.
func NewExpense(description string, amount float64, category types.Category) (types.Entry, error) {
	if err := checkEntry(description, amount); err != nil {
		return types.Entry{}, err
	}

	if category == "" {
		category = types.CategoryUncategorized
	}
	if !category.Valid() || category == types.CategoryIncome {
		return types.Entry{}, fmt.Errorf("invalid expense category: %s", category)
	}

	return types.Entry{
		Description: description,
		Amount:      -math.Abs(amount),
		Category:    category,
	}, nil
}

// Normalize returns a copy of entries with income made positive and
// everything else made negative.
func Normalize(entries []types.Entry) []types.Entry {
	normalized := make([]types.Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsIncome() {
			e.Amount = math.Abs(e.Amount)
		} else {
			e.Amount = -math.Abs(e.Amount)
		}
		normalized = append(normalized, e)
	}

	return normalized
}
