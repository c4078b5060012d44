package bankimport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/gst-server/internal/gst"
)

func optionsWithout(names ...string) []gst.CategoryOption {
	var options []gst.CategoryOption
	for _, option := range gst.CategoryOptions() {
		excluded := false
		for _, name := range names {
			if option.Name == name {
				excluded = true
			}
		}
		if !excluded {
			options = append(options, option)
		}
	}
	return options
}

func TestGuessCategory_PayToIRD(t *testing.T) {
	id, ok := GuessCategory("Payment to IRD for GST", gst.TransactionTypeExpense, gst.CategoryOptions())

	assert.True(t, ok)
	assert.Equal(t, "Pay to IRD", id)
}

func TestGuessCategory_PayToIRDMissingFallsThrough(t *testing.T) {
	id, ok := GuessCategory("Payment to IRD for GST", gst.TransactionTypeExpense, optionsWithout("Pay to IRD"))

	assert.True(t, ok)
	assert.Equal(t, "Other IRD payments", id)
}

func TestGuessCategory_RefundFromIRD(t *testing.T) {
	id, ok := GuessCategory("INLAND REVENUE  gst refund", gst.TransactionTypeIncome, gst.CategoryOptions())
	assert.True(t, ok)
	assert.Equal(t, "Refund from IRD", id)

	id, ok = GuessCategory("inland revenue gst refund", gst.TransactionTypeIncome, optionsWithout("Refund from IRD"))
	assert.True(t, ok)
	assert.Equal(t, "GST refund from IRD", id)
}

func TestGuessCategory_OwnersFundingIncomeOnly(t *testing.T) {
	id, ok := GuessCategory("D/C FROM J SMITH", gst.TransactionTypeIncome, gst.CategoryOptions())
	assert.True(t, ok)
	assert.Equal(t, "Owner's funding", id)

	_, ok = GuessCategory("D/C FROM J SMITH", gst.TransactionTypeExpense, gst.CategoryOptions())
	assert.False(t, ok)
}

func TestGuessCategory_MatchedRuleWithMissingCategoryStops(t *testing.T) {
	// "instalment" matches the loan rule, so the later meals rule never runs.
	_, ok := GuessCategory("cafe instalment", gst.TransactionTypeExpense, optionsWithout("Financial loan"))

	assert.False(t, ok)
}

func TestGuessCategory_KeywordRules(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"UDC Finance loan", "Financial loan"},
		{"Spark NZ Trading", "Internet & mobile phone"},
		{"Southern Cross Health", "Insurance"},
		{"Uber trip help.uber.com", "Travel & transport"},
		{"Z Energy Newmarket", "Travel & transport"},
		{"Espresso Cafe Ponsonby", "Client entertainment & meals"},
		{"The Warehouse Sylvia Park", "Office supplies & stationery"},
		{"Westfield Shopping Centre", "Other general expenses"},
		{"Sylvia Park mall", "Other general expenses"},
	}

	for _, tt := range tests {
		id, ok := GuessCategory(tt.text, gst.TransactionTypeExpense, gst.CategoryOptions())
		assert.True(t, ok, tt.text)
		assert.Equal(t, tt.expected, id, tt.text)
	}
}

func TestGuessCategory_IRDSubstringInWord(t *testing.T) {
	// Any "ird" substring counts as an IRD mention.
	id, ok := GuessCategory("Little Bird Cafe", gst.TransactionTypeExpense, gst.CategoryOptions())

	assert.True(t, ok)
	assert.Equal(t, "Pay to IRD", id)
}

func TestGuessCategory_NoMatch(t *testing.T) {
	_, ok := GuessCategory("Acme Widgets Ltd", gst.TransactionTypeExpense, gst.CategoryOptions())

	assert.False(t, ok)
}

func TestGuesser_CustomRules(t *testing.T) {
	guesser := NewGuesser([]Rule{
		{Name: "hosting", Match: keywords("aws"), Targets: target("Software subscriptions & cloud services")},
	})

	id, ok := guesser.Guess("AWS EMEA", gst.TransactionTypeExpense, gst.CategoryOptions())
	assert.True(t, ok)
	assert.Equal(t, "Software subscriptions & cloud services", id)
}

func TestFindCategoryIDByName_CaseInsensitive(t *testing.T) {
	id, ok := FindCategoryIDByName("office RENT", gst.CategoryOptions())

	assert.True(t, ok)
	assert.Equal(t, "Office rent", id)
}
