package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCategoryIncludedInGST(t *testing.T) {
	assert.True(t, IsCategoryIncludedInGST("Office rent"))
	assert.True(t, IsCategoryIncludedInGST("office RENT"))
	assert.False(t, IsCategoryIncludedInGST("Pay to IRD"))
	assert.False(t, IsCategoryIncludedInGST("Owner's funding"))
	assert.True(t, IsCategoryIncludedInGST("Not a real category"))
	assert.True(t, IsCategoryIncludedInGST(""))
}

func TestDefaultGSTIncluded(t *testing.T) {
	assert.True(t, DefaultGSTIncluded("Client entertainment & meals"))
	assert.False(t, DefaultGSTIncluded("Financial loan"))
	assert.False(t, DefaultGSTIncluded("Refund from IRD"))
	assert.False(t, DefaultGSTIncluded("Misc IRD adjustment"))
	assert.False(t, DefaultGSTIncluded("Owner funding top-up"))
	assert.True(t, DefaultGSTIncluded("Unlisted supplier"))
}

func TestCategoriesOfType(t *testing.T) {
	for _, category := range CategoriesOfType(TransactionTypeIncome) {
		assert.Equal(t, TransactionTypeIncome, category.Type, category.Name)
	}
	assert.NotEmpty(t, CategoriesOfType(TransactionTypeExpense))
}

func TestCategoryOptions_IDIsName(t *testing.T) {
	options := CategoryOptions()

	assert.Len(t, options, len(Categories()))
	for _, option := range options {
		assert.Equal(t, option.Name, option.ID)
		assert.True(t, IsKnownCategory(option.Name))
	}
}
