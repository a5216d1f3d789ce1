package types

type Category string

const (
	CategoryUncategorized = Category("Uncategorized")
	CategoryFood          = Category("Food")
	CategoryTransport     = Category("Transport")
	CategoryEntertainment = Category("Entertainment")
	CategoryOther         = Category("Other")
	CategoryIncome        = Category("Income")
)

// Chart labels that never appear as an entry category.
const (
	ChartRemaining = "Remaining"
	ChartNone      = "None"
)

var Categories = []Category{
	CategoryUncategorized,
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryOther,
	CategoryIncome,
}

func (c Category) Valid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}

	return false
}

// ExpenseCategories are the categories an expense may be filed under.
func ExpenseCategories() []Category {
	cats := []Category{}
	for _, c := range Categories {
		if c != CategoryIncome {
			cats = append(cats, c)
		}
	}

	return cats
}

// Entry is a single line of the household ledger. Income amounts are
// positive, everything else is negative.
type Entry struct {
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`
}

func (e Entry) IsIncome() bool {
	return e.Category == CategoryIncome
}

// GraphData maps a chart label to its slice value.
type GraphData map[string]float64
