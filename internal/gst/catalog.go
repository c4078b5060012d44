package gst

import "strings"

// Category is a static catalog entry.
type Category struct {
	Name string
	Type TransactionType
	// IncludeInGST decides whether transactions in this category count towards
	// GST totals at all, independent of each transaction's GST-included flag.
	IncludeInGST bool
}

// OtherGeneralExpenses is the fallback category for imported rows.
const OtherGeneralExpenses = "Other general expenses"

var catalog = []Category{
	{Name: "Office rent", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Office supplies & stationery", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Internet", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Mobile phone", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Internet & mobile phone", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Software subscriptions & cloud services", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Travel & transport", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Marketing & advertising", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Client entertainment & meals", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Project costs & purchases", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Accounting, legal & professional services", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Insurance", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Equipment & asset purchases", Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: OtherGeneralExpenses, Type: TransactionTypeExpense, IncludeInGST: true},
	{Name: "Pay to IRD", Type: TransactionTypeExpense, IncludeInGST: false},
	{Name: "Other IRD payments", Type: TransactionTypeExpense, IncludeInGST: false},
	{Name: "Financial loan", Type: TransactionTypeExpense, IncludeInGST: false},

	{Name: "Design consulting income", Type: TransactionTypeIncome, IncludeInGST: true},
	{Name: "Property consulting income", Type: TransactionTypeIncome, IncludeInGST: true},
	{Name: "Other service income", Type: TransactionTypeIncome, IncludeInGST: true},
	{Name: "Rental income", Type: TransactionTypeIncome, IncludeInGST: true},
	{Name: "Other income", Type: TransactionTypeIncome, IncludeInGST: true},
	{Name: "Owner's funding", Type: TransactionTypeIncome, IncludeInGST: false},
	{Name: "Refund from IRD", Type: TransactionTypeIncome, IncludeInGST: false},
	{Name: "GST refund from IRD", Type: TransactionTypeIncome, IncludeInGST: false},
}

var catalogByName = func() map[string]Category {
	byName := make(map[string]Category, len(catalog))
	for _, category := range catalog {
		byName[strings.ToLower(category.Name)] = category
	}
	return byName
}()

// Categories returns every catalog entry in display order.
func Categories() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// CategoriesOfType returns the catalog entries for one transaction type.
func CategoriesOfType(transactionType TransactionType) []Category {
	var out []Category
	for _, category := range catalog {
		if category.Type == transactionType {
			out = append(out, category)
		}
	}
	return out
}

// LookupCategory finds a category by case-insensitive name.
func LookupCategory(name string) (Category, bool) {
	category, ok := catalogByName[strings.ToLower(strings.TrimSpace(name))]
	return category, ok
}

// IsKnownCategory reports whether name is in the catalog.
func IsKnownCategory(name string) bool {
	_, ok := LookupCategory(name)
	return ok
}

// IsCategoryIncludedInGST returns the catalog flag. Unknown and empty names
// are included so unclassified spend is never dropped from GST totals.
func IsCategoryIncludedInGST(name string) bool {
	category, ok := LookupCategory(name)
	if !ok {
		return true
	}
	return category.IncludeInGST
}

// DefaultGSTIncluded is the initial GST-included toggle for a category.
func DefaultGSTIncluded(name string) bool {
	if category, ok := LookupCategory(name); ok {
		return category.IncludeInGST
	}

	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "financial loan"):
		return false
	case strings.Contains(lower, "owner") && strings.Contains(lower, "funding"):
		return false
	case strings.Contains(lower, "ird"):
		return false
	}
	return true
}

// CategoryOption is a selectable category. The ID is the category name.
type CategoryOption struct {
	ID   string
	Name string
}

// CategoryOptions returns the full catalog as selectable options.
func CategoryOptions() []CategoryOption {
	options := make([]CategoryOption, len(catalog))
	for i, category := range catalog {
		options[i] = CategoryOption{ID: category.Name, Name: category.Name}
	}
	return options
}
