package ledger

import (
	"errors"
	"fmt"
	"math"

	"github.com/xiaomi388/kakeibo/pkg/types"
)

// ErrNotFinite is returned when a total overflows to infinity.
var ErrNotFinite = errors.New("total is not a finite number")

type Summary struct {
	Income   float64                    `json:"income"`
	Expenses map[types.Category]float64 `json:"expenses"`
}

func (s Summary) TotalExpense() float64 {
	total := 0.0
	for _, v := range s.Expenses {
		total += v
	}

	return total
}

func (s Summary) Residual() float64 {
	return s.Income - s.TotalExpense()
}

// Summarize totals income and per-category expenses. Zero amounts are skipped.
func Summarize(entries []types.Entry) Summary {
	summary := Summary{Expenses: map[types.Category]float64{}}

	for _, e := range Normalize(entries) {
		switch {
		case e.Amount > 0:
			summary.Income += e.Amount
		case e.Amount < 0:
			summary.Expenses[e.Category] += math.Abs(e.Amount)
		}
	}

	return summary
}

// ChartData returns the slices of the breakdown chart: expenses per
// category plus what remains of the income. Without income there is
// nothing to break down and a single placeholder slice is returned.
func (s Summary) ChartData() types.GraphData {
	if s.Income <= 0 {
		return types.GraphData{types.ChartNone: 1}
	}

	data := types.GraphData{}
	for cat, v := range s.Expenses {
		data[string(cat)] = v
	}
	data[types.ChartRemaining] = math.Max(s.Residual(), 0)

	return data
}

func (s Summary) checkFinite() error {
	if math.IsInf(s.Income, 0) || math.IsNaN(s.Income) {
		return fmt.Errorf("income total is %v: %w", s.Income, ErrNotFinite)
	}
	for cat, v := range s.Expenses {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("%s expense total is %v: %w", cat, v, ErrNotFinite)
		}
	}

	if total := s.TotalExpense(); math.IsInf(total, 0) {
		return fmt.Errorf("expense total is %v: %w", total, ErrNotFinite)
	}

	return nil
}
