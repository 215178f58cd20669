// Package ledger computes a patient's financial summary from the raw fee and
// payment history. Pure functions, no storage access.
package ledger

import (
	"smilehub-server/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// TotalPaid sums all payment amounts. Order of the list does not matter.
func TotalPaid(payments []entity.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Due returns the outstanding balance, clamped at zero. A patient who has
// paid more than the fee shows a due of 0, never a negative number.
func Due(totalFee decimal.Decimal, payments []entity.Payment) decimal.Decimal {
	due := totalFee.Sub(TotalPaid(payments))
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}
