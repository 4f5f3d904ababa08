package accounting

import (
	"fmt"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the sign implied by the transaction kind to its stored magnitude.
// Income -> Positive (+)
// Expense -> Negative (-)
func CalculateSignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.Kind {
	case domain.Income:
		return txn.Amount, nil
	case domain.Expense:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction kind '%s' encountered for transaction ID %s", txn.Kind, txn.TransactionID)
	}
}

// NetTotal sums the signed amounts of transactions. Transactions with an unknown kind
// contribute nothing and are reported through skipped.
func NetTotal(transactions []domain.Transaction) (total decimal.Decimal, skipped int) {
	total = decimal.Zero
	for _, txn := range transactions {
		signed, err := CalculateSignedAmount(txn)
		if err != nil {
			skipped++
			continue
		}
		total = total.Add(signed)
	}
	return total, skipped
}
