package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("Rent").Valid())
	assert.False(t, Category("").Valid())
}

func TestExpenseCategoriesExcludeIncome(t *testing.T) {
	assert.NotContains(t, ExpenseCategories(), CategoryIncome)
	assert.Len(t, ExpenseCategories(), len(Categories)-1)
}
