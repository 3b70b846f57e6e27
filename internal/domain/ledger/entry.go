package ledger

import (
	"strings"
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind tags the two ledger line subtypes
type EntryKind string

const (
	KindBill    EntryKind = "bill"
	KindPayment EntryKind = "payment"
)

// Line is the common view over bill and payment entries used by the
// statement builder. Seq is a monotonic insertion sequence assigned by the
// store; together with the entry date it gives a total, deterministic order.
type Line interface {
	LineID() uuid.UUID
	LineCustomer() uuid.UUID
	LineDate() time.Time
	LineSeq() int64
	LineDebit() decimal.Decimal
	LineCredit() decimal.Decimal
	LineKind() EntryKind
}

// BillEntry records an amount a customer owes
type BillEntry struct {
	shared.TenantAggregateRoot
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	BillNumber  string          `gorm:"index" json:"bill_number"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"debit"`
	EntryDate   time.Time       `gorm:"not null;index" json:"entry_date"`
	Seq         int64           `gorm:"autoIncrement;uniqueIndex" json:"seq"`
}

func NewBillEntry(tenantID, customerID uuid.UUID, billNumber, description string, debit decimal.Decimal, entryDate time.Time) (*BillEntry, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer is required")
	}
	if !debit.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Bill amount must be greater than zero")
	}
	if entryDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Entry date is required")
	}

	return &BillEntry{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CustomerID:          customerID,
		BillNumber:          strings.TrimSpace(billNumber),
		Description:         strings.TrimSpace(description),
		Debit:               debit,
		EntryDate:           entryDate,
	}, nil
}

func (e *BillEntry) LineID() uuid.UUID           { return e.ID }
func (e *BillEntry) LineCustomer() uuid.UUID     { return e.CustomerID }
func (e *BillEntry) LineDate() time.Time         { return e.EntryDate }
func (e *BillEntry) LineSeq() int64              { return e.Seq }
func (e *BillEntry) LineDebit() decimal.Decimal  { return e.Debit }
func (e *BillEntry) LineCredit() decimal.Decimal { return decimal.Zero }
func (e *BillEntry) LineKind() EntryKind         { return KindBill }

func (BillEntry) TableName() string {
	return "ledger_bill_entries"
}

// PaymentEntry records an amount received from a customer
type PaymentEntry struct {
	shared.TenantAggregateRoot
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"not null" json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	ReceivedBy    string          `json:"received_by"`
	Description   string          `json:"description"`
	EntryDate     time.Time       `gorm:"not null;index" json:"entry_date"`
	Seq           int64           `gorm:"autoIncrement;uniqueIndex" json:"seq"`
}

func NewPaymentEntry(tenantID, customerID uuid.UUID, amount decimal.Decimal, paymentMethod, transactionID, receivedBy, description string, entryDate time.Time) (*PaymentEntry, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be greater than zero")
	}
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is required")
	}
	if entryDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Entry date is required")
	}

	return &PaymentEntry{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CustomerID:          customerID,
		Amount:              amount,
		PaymentMethod:       paymentMethod,
		TransactionID:       strings.TrimSpace(transactionID),
		ReceivedBy:          strings.TrimSpace(receivedBy),
		Description:         strings.TrimSpace(description),
		EntryDate:           entryDate,
	}, nil
}

func (e *PaymentEntry) LineID() uuid.UUID           { return e.ID }
func (e *PaymentEntry) LineCustomer() uuid.UUID     { return e.CustomerID }
func (e *PaymentEntry) LineDate() time.Time         { return e.EntryDate }
func (e *PaymentEntry) LineSeq() int64              { return e.Seq }
func (e *PaymentEntry) LineDebit() decimal.Decimal  { return decimal.Zero }
func (e *PaymentEntry) LineCredit() decimal.Decimal { return e.Amount }
func (e *PaymentEntry) LineKind() EntryKind         { return KindPayment }

func (PaymentEntry) TableName() string {
	return "ledger_payment_entries"
}
