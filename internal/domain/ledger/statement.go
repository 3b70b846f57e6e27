package ledger

import (
	"sort"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Entry is one statement row: a ledger line with its running balance.
// Balance is computed at build time and never persisted, so a backdated
// insert only requires rebuilding the statement, not rewriting history.
type Entry struct {
	Line    Line
	Balance decimal.Decimal
}

// Totals aggregates a statement. RemainingBalance always equals
// TotalDebit minus TotalCredit and the running balance of the last row.
type Totals struct {
	TotalDebit       decimal.Decimal `json:"total_debit"`
	TotalCredit      decimal.Decimal `json:"total_credit"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TotalReceived    decimal.Decimal `json:"total_received"`
	FinalBalance     decimal.Decimal `json:"final_balance"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// Statement is the ordered ledger view returned by a khata query
type Statement struct {
	Entries []Entry
	Totals  Totals
}

// BuildStatement merges bill and payment lines into one sequence ordered by
// (entry date, insertion seq) and walks it once, stamping the post-entry
// running balance on each row. Sorting here, not at fetch time, keeps the
// balance deterministic regardless of how the two tables were queried.
func BuildStatement(lines []Line) Statement {
	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].LineDate(), sorted[j].LineDate()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return sorted[i].LineSeq() < sorted[j].LineSeq()
	})

	stmt := Statement{Entries: make([]Entry, 0, len(sorted))}
	balance := decimal.Zero
	for _, line := range sorted {
		balance = balance.Add(line.LineDebit()).Sub(line.LineCredit())
		stmt.Entries = append(stmt.Entries, Entry{Line: line, Balance: balance})
		stmt.Totals.TotalDebit = stmt.Totals.TotalDebit.Add(line.LineDebit())
		stmt.Totals.TotalCredit = stmt.Totals.TotalCredit.Add(line.LineCredit())
	}

	stmt.Totals.TotalAmount = stmt.Totals.TotalDebit
	stmt.Totals.TotalReceived = stmt.Totals.TotalCredit
	stmt.Totals.FinalBalance = stmt.Totals.TotalDebit.Sub(stmt.Totals.TotalCredit)
	stmt.Totals.RemainingBalance = stmt.Totals.FinalBalance
	return stmt
}

// ValidatePaymentAmount enforces the payment cap against the customer's
// current remaining balance. Callers must re-check inside the same store
// transaction that inserts the payment.
func ValidatePaymentAmount(amount, remainingBalance decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be greater than zero")
	}
	if amount.GreaterThan(remainingBalance) {
		return shared.ErrInsufficientBalance
	}
	return nil
}
