package invoice

import (
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/shopspring/decimal"
)

// ProfitEpsilon absorbs currency rounding when comparing a seller-reported
// profit against the system figure. Differences at or below this are equal.
var ProfitEpsilon = decimal.RequireFromString("0.01")

// MatchOutcome classifies one statement row against system state
type MatchOutcome string

const (
	OutcomeMatched        MatchOutcome = "matched"
	OutcomeProfitMismatch MatchOutcome = "profit_mismatch"
	OutcomeAlreadyPaid    MatchOutcome = "already_paid"
	OutcomeNotFound       MatchOutcome = "not_found"
	OutcomeNotDelivered   MatchOutcome = "not_delivered"
)

// StatementRow is one row of a seller-provided statement, parsed upstream
// from a CSV/XLSX upload.
type StatementRow struct {
	SellerReference int64
	InvoiceNumber   string
	Profit          decimal.Decimal
}

// MatchRecord is the classified result for one statement row
type MatchRecord struct {
	SellerReference int64            `json:"seller_reference"`
	InvoiceNumber   string           `json:"invoice_number"`
	SellerProfit    decimal.Decimal  `json:"seller_profit"`
	SystemReference *int64           `json:"system_reference,omitempty"`
	SystemProfit    *decimal.Decimal `json:"system_profit,omitempty"`
	OrderStatus     string           `json:"order_status,omitempty"`
	Outcome         MatchOutcome     `json:"outcome"`
	// Difference = seller profit - system profit, only for profit_mismatch
	Difference *decimal.Decimal `json:"difference,omitempty"`
}

// MatchSummary counts outcomes across the whole statement
type MatchSummary struct {
	Total          int `json:"total"`
	Matched        int `json:"matched"`
	ProfitMismatch int `json:"profit_mismatch"`
	Issues         int `json:"issues"` // already_paid + not_found + not_delivered
}

// MatchResult holds the five outcome buckets plus the summary. Every input
// row lands in exactly one bucket; the matcher never drops or rejects rows.
type MatchResult struct {
	Matched        []MatchRecord `json:"matched"`
	ProfitMismatch []MatchRecord `json:"profit_mismatch"`
	AlreadyPaid    []MatchRecord `json:"already_paid"`
	NotFound       []MatchRecord `json:"not_found"`
	NotDelivered   []MatchRecord `json:"not_delivered"`
	Summary        MatchSummary  `json:"summary"`
}

// Add places a record in its outcome bucket and updates the summary
func (r *MatchResult) Add(rec MatchRecord) {
	r.Summary.Total++
	switch rec.Outcome {
	case OutcomeMatched:
		r.Matched = append(r.Matched, rec)
		r.Summary.Matched++
	case OutcomeProfitMismatch:
		r.ProfitMismatch = append(r.ProfitMismatch, rec)
		r.Summary.ProfitMismatch++
	case OutcomeAlreadyPaid:
		r.AlreadyPaid = append(r.AlreadyPaid, rec)
		r.Summary.Issues++
	case OutcomeNotFound:
		r.NotFound = append(r.NotFound, rec)
		r.Summary.Issues++
	case OutcomeNotDelivered:
		r.NotDelivered = append(r.NotDelivered, rec)
		r.Summary.Issues++
	}
}

// Classify decides the outcome for one statement row. o is the system order
// found by seller reference (nil when absent); invoicePaid reports whether
// the order's invoice is marked paid. Priority order is fixed: not_found,
// not_delivered, already_paid, profit_mismatch, matched.
//
// Classification is a pure read; it must never mutate order or invoice state.
func Classify(row StatementRow, o *order.Order, invoicePaid bool) MatchRecord {
	rec := MatchRecord{
		SellerReference: row.SellerReference,
		InvoiceNumber:   row.InvoiceNumber,
		SellerProfit:    row.Profit,
	}

	if o == nil {
		rec.Outcome = OutcomeNotFound
		return rec
	}

	rec.SystemReference = &o.SellerReference
	rec.SystemProfit = &o.Profit
	rec.OrderStatus = o.Status.String()

	if order.NormalizeStatus(o.Status.String()) != order.StatusDelivered {
		rec.Outcome = OutcomeNotDelivered
		return rec
	}

	if invoicePaid {
		rec.Outcome = OutcomeAlreadyPaid
		return rec
	}

	diff := row.Profit.Sub(o.Profit)
	if diff.Abs().GreaterThan(ProfitEpsilon) {
		rec.Outcome = OutcomeProfitMismatch
		rec.Difference = &diff
		return rec
	}

	rec.Outcome = OutcomeMatched
	return rec
}
