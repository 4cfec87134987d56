package accounting

import (
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the accepted absolute difference between the debit and
// credit totals of a document. Amounts are small-unit integers/decimals;
// sub-unit rounding below one currency unit is tolerated, anything above
// aborts the whole document.
var BalanceTolerance = decimal.NewFromInt(1)

// Totals sums the debit (bed) and credit (bes) sides of a set of entries.
func Totals(entries []domain.FinancialEntry) (bed, bes decimal.Decimal) {
	bed = decimal.Zero
	bes = decimal.Zero
	for _, e := range entries {
		bed = bed.Add(e.Bed)
		bes = bes.Add(e.Bes)
	}
	return bed, bes
}

// IsBalanced reports whether the entries satisfy the balance law
// |sum(bed) - sum(bes)| <= BalanceTolerance.
func IsBalanced(entries []domain.FinancialEntry) bool {
	bed, bes := Totals(entries)
	return bed.Sub(bes).Abs().LessThanOrEqual(BalanceTolerance)
}

// DocumentAmount is the economic value of a balanced document: the debit
// total (equal to the credit total within tolerance).
func DocumentAmount(entries []domain.FinancialEntry) decimal.Decimal {
	bed, _ := Totals(entries)
	return bed
}
