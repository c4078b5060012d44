package bankimport

import (
	"strings"

	"github.com/carson-networks/gst-server/internal/gst"
)

// Rule assigns a category to bank text. Rules are tried in order and the
// first rule whose Match returns true decides the outcome.
type Rule struct {
	Name  string
	Match func(text string, transactionType gst.TransactionType) bool
	// Targets are tried in order against the supplied categories.
	Targets func(transactionType gst.TransactionType) []string
	// FallThrough lets evaluation continue with later rules when none of the
	// targets exist in the supplied categories.
	FallThrough bool
}

func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

func keywords(needles ...string) func(string, gst.TransactionType) bool {
	return func(text string, _ gst.TransactionType) bool {
		return containsAny(text, needles...)
	}
}

func target(names ...string) func(gst.TransactionType) []string {
	return func(gst.TransactionType) []string {
		return names
	}
}

func byType(income, expense []string) func(gst.TransactionType) []string {
	return func(transactionType gst.TransactionType) []string {
		if transactionType == gst.TransactionTypeIncome {
			return income
		}
		return expense
	}
}

func mentionsIRD(text string) bool {
	return containsAny(text, "ird", "i.r.d", "inland revenue")
}

// DefaultRules is the ordered rule set used for bank imports.
var DefaultRules = []Rule{
	{
		Name: "ird-settlement",
		Match: func(text string, _ gst.TransactionType) bool {
			return containsAny(text, " ird ", "i.r.d", "inland revenue", " ird") || strings.HasPrefix(text, "ird")
		},
		Targets:     byType([]string{"Refund from IRD"}, []string{"Pay to IRD"}),
		FallThrough: true,
	},
	{
		Name: "owners-funding",
		Match: func(text string, transactionType gst.TransactionType) bool {
			return transactionType == gst.TransactionTypeIncome &&
				containsAny(text, "owners capital", "owner's capital", "d/c from")
		},
		Targets: target("Owner's funding"),
	},
	{
		Name: "ird-other",
		Match: func(text string, _ gst.TransactionType) bool {
			return mentionsIRD(text)
		},
		Targets: byType(
			[]string{"Refund from IRD", "GST refund from IRD"},
			[]string{"Pay to IRD", "Other IRD payments"},
		),
	},
	{
		Name:    "financial-loan",
		Match:   keywords("udc finance", "instalment", "installment"),
		Targets: target("Financial loan"),
	},
	{
		Name:    "telco",
		Match:   keywords("2degrees", "spark", "vodafone", "skinny"),
		Targets: target("Internet & mobile phone"),
	},
	{
		Name:    "insurance",
		Match:   keywords("vero insuran", "aia", "southern cross", "insurance"),
		Targets: target("Insurance"),
	},
	{
		Name: "travel",
		Match: keywords(
			"uber", " taxi", "cab ", "airport shuttle", " parking", "carpark",
			"z energy", "bp ", "caltex", "mobil", "gull",
		),
		Targets: target("Travel & transport"),
	},
	{
		Name: "meals",
		Match: keywords(
			"cafe", " coffee", "tea bar", "majesticteabar", "restaurant", "cuisine",
			" bar", " pub", "bistro", "izakaya", "mcdonald", "kfc", "burger king", "subway",
		),
		Targets: target("Client entertainment & meals"),
	},
	{
		Name: "office-supplies",
		Match: keywords(
			"kmart", "the warehouse", "warehouse stationery", "farmers", "paper plus", "chemist warehouse",
		),
		Targets: target("Office supplies & stationery"),
	},
	{
		Name:    "shopping-centre",
		Match:   keywords("westfield shopping", "shopping ctre", "shopping centre", "shopping center", " mall"),
		Targets: target(gst.OtherGeneralExpenses),
	},
}

// NormalizeText lowercases text and collapses whitespace.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// FindCategoryIDByName does a case-insensitive exact match on category name.
func FindCategoryIDByName(name string, categories []gst.CategoryOption) (string, bool) {
	for _, category := range categories {
		if strings.EqualFold(category.Name, name) {
			return category.ID, true
		}
	}
	return "", false
}

// Guesser evaluates an ordered rule list.
type Guesser struct {
	rules []Rule
}

func NewGuesser(rules []Rule) *Guesser {
	return &Guesser{rules: rules}
}

// Guess returns the category id for text, or false when no rule assigns one.
func (g *Guesser) Guess(text string, transactionType gst.TransactionType, categories []gst.CategoryOption) (string, bool) {
	lower := NormalizeText(text)

	for _, rule := range g.rules {
		if !rule.Match(lower, transactionType) {
			continue
		}
		for _, name := range rule.Targets(transactionType) {
			if id, ok := FindCategoryIDByName(name, categories); ok {
				return id, true
			}
		}
		if !rule.FallThrough {
			return "", false
		}
	}

	return "", false
}

var defaultGuesser = NewGuesser(DefaultRules)

// GuessCategory runs DefaultRules.
func GuessCategory(text string, transactionType gst.TransactionType, categories []gst.CategoryOption) (string, bool) {
	return defaultGuesser.Guess(text, transactionType, categories)
}
