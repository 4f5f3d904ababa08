package domain

import "strings"

// Suggested category labels offered to clients. The data model does not require
// transactions to use them; see IsKnownCategory for the optional strict mode.
var (
	IncomeCategories  = []string{"Salary", "Savings"}
	ExpenseCategories = []string{"Food", "Transport", "Medicine", "Groceries", "Rent", "Gifts", "Entertainment"}
)

// SuggestedCategories returns the curated labels for kind, or all of them when kind is empty.
func SuggestedCategories(kind TransactionKind) []string {
	switch kind {
	case Income:
		return append([]string(nil), IncomeCategories...)
	case Expense:
		return append([]string(nil), ExpenseCategories...)
	default:
		all := make([]string, 0, len(IncomeCategories)+len(ExpenseCategories))
		all = append(all, ExpenseCategories...)
		return append(all, IncomeCategories...)
	}
}

// CanonicalCategory returns the vocabulary spelling of label, matched case-insensitively.
func CanonicalCategory(label string) (string, bool) {
	label = strings.TrimSpace(label)
	for _, c := range SuggestedCategories("") {
		if strings.EqualFold(c, label) {
			return c, true
		}
	}
	return "", false
}

// IsKnownCategory reports whether label is part of the curated vocabulary (case-insensitive).
func IsKnownCategory(label string) bool {
	_, ok := CanonicalCategory(label)
	return ok
}
