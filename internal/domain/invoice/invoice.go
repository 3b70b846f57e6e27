package invoice

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillNumberPrefix is the prefix for generated bill numbers
const BillNumberPrefix = "INV-"

// Invoice represents a seller invoice aggregate root: a periodic bill that
// rolls the seller's delivered/returned orders into one statement.
//
// Financial totals are never stored on the row; they are recomputed from the
// linked order set on every read (see ComputeTotals) so late status changes
// cannot drift away from a cached number.
type Invoice struct {
	shared.TenantAggregateRoot
	SellerID      uuid.UUID
	BillNumber    string // unique per tenant, e.g. INV-007
	InvoiceDate   time.Time
	OtherExpenses decimal.Decimal
	// IncludeReturnProfit is accepted and recorded but currently always
	// treated as true by the totals engine; reserved for a later policy.
	IncludeReturnProfit bool
	IsPaid              bool
	PaidAt              *time.Time
}

// NewInvoice creates a new invoice header.
func NewInvoice(tenantID, sellerID uuid.UUID, billNumber string, invoiceDate time.Time, otherExpenses decimal.Decimal) (*Invoice, error) {
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLER", "Seller ID cannot be empty")
	}
	billNumber = strings.TrimSpace(billNumber)
	if billNumber == "" {
		return nil, shared.NewDomainError("INVALID_BILL_NUMBER", "Bill number cannot be empty")
	}
	if otherExpenses.IsNegative() {
		return nil, shared.NewDomainError("INVALID_EXPENSES", "Other expenses cannot be negative")
	}
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}

	return &Invoice{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		SellerID:            sellerID,
		BillNumber:          billNumber,
		InvoiceDate:         invoiceDate,
		OtherExpenses:       otherExpenses,
		IncludeReturnProfit: true,
	}, nil
}

// MarkPaid flags the invoice as paid.
func (i *Invoice) MarkPaid() error {
	if i.IsPaid {
		return shared.NewDomainError("INVALID_STATE", "Invoice is already paid")
	}
	now := time.Now()
	i.IsPaid = true
	i.PaidAt = &now
	i.UpdatedAt = now
	return nil
}

// MarkUnpaid clears the paid flag.
func (i *Invoice) MarkUnpaid() error {
	if !i.IsPaid {
		return shared.NewDomainError("INVALID_STATE", "Invoice is not paid")
	}
	i.IsPaid = false
	i.PaidAt = nil
	i.UpdatedAt = time.Now()
	return nil
}

// CanDelete reports whether the invoice may be removed. Paid invoices are
// settled history and must not disappear.
func (i *Invoice) CanDelete() bool {
	return !i.IsPaid
}

// NextBillNumber derives the next bill number from a seller's last one,
// zero-padded to three digits (INV-001, INV-002, ...). An empty last number
// starts the sequence.
func NextBillNumber(last string) (string, error) {
	if last == "" {
		return fmt.Sprintf("%s%03d", BillNumberPrefix, 1), nil
	}
	numPart, ok := strings.CutPrefix(last, BillNumberPrefix)
	if !ok {
		return "", shared.NewDomainError("INVALID_BILL_NUMBER", "Last bill number has unexpected format: "+last)
	}
	n, err := strconv.Atoi(numPart)
	if err != nil {
		return "", shared.NewDomainError("INVALID_BILL_NUMBER", "Last bill number has unexpected format: "+last)
	}
	return fmt.Sprintf("%s%03d", BillNumberPrefix, n+1), nil
}

// TableName returns the database table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}
