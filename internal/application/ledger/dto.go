package ledger

import (
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/ledger"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest represents a request to create a khata customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone"`
	Party string `json:"party"`
}

// UpdateCustomerRequest represents a request to update a khata customer
type UpdateCustomerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Phone string `json:"phone"`
	Party string `json:"party"`
}

// CustomerResponse represents a khata customer in API responses
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Party     string    `json:"party"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordBillRequest represents a request to record a bill (debit) entry
type RecordBillRequest struct {
	CustomerID  uuid.UUID       `json:"customer_id" binding:"required"`
	BillNumber  string          `json:"bill_number"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	EntryDate   time.Time       `json:"entry_date" binding:"required"`
}

// RecordPaymentRequest represents a request to record a payment (credit) entry
type RecordPaymentRequest struct {
	CustomerID    uuid.UUID       `json:"customer_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	PaymentDate   time.Time       `json:"payment_date" binding:"required"`
	TransactionID string          `json:"transaction_id"`
	ReceivedBy    string          `json:"received_by"`
	Description   string          `json:"description"`
}

// KhataFilter represents filtering options for a khata query
type KhataFilter struct {
	CustomerID *uuid.UUID `form:"customer_id"`
	BillNumber string     `form:"bill_number"`
	StartDate  *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate    *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// EntryResponse is one khata statement row with its running balance
type EntryResponse struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Kind          string          `json:"kind"`
	BillNumber    string          `json:"bill_number,omitempty"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	ReceivedBy    string          `json:"received_by,omitempty"`
	EntryDate     time.Time       `json:"entry_date"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
}

// TotalsResponse represents khata aggregate totals
type TotalsResponse struct {
	TotalDebit              decimal.Decimal `json:"total_debit"`
	TotalCredit             decimal.Decimal `json:"total_credit"`
	TotalAmount             decimal.Decimal `json:"total_amount"`
	TotalReceived           decimal.Decimal `json:"total_received"`
	FinalBalance            decimal.Decimal `json:"final_balance"`
	RemainingBalance        decimal.Decimal `json:"remaining_balance"`
	RemainingBalanceDisplay string          `json:"remaining_balance_display"`
}

// KhataResponse is the full khata statement for a filter
type KhataResponse struct {
	Entries []EntryResponse `json:"entries"`
	Totals  TotalsResponse  `json:"totals"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *ledger.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Party:     c.Party,
		CreatedAt: c.CreatedAt,
	}
}

func toEntryResponse(e ledger.Entry) EntryResponse {
	resp := EntryResponse{
		ID:         e.Line.LineID(),
		CustomerID: e.Line.LineCustomer(),
		Kind:       string(e.Line.LineKind()),
		EntryDate:  e.Line.LineDate(),
		Debit:      e.Line.LineDebit(),
		Credit:     e.Line.LineCredit(),
		Balance:    e.Balance,
	}
	switch line := e.Line.(type) {
	case *ledger.BillEntry:
		resp.BillNumber = line.BillNumber
		resp.Description = line.Description
	case *ledger.PaymentEntry:
		resp.PaymentMethod = line.PaymentMethod
		resp.TransactionID = line.TransactionID
		resp.ReceivedBy = line.ReceivedBy
		resp.Description = line.Description
	}
	return resp
}

// ToKhataResponse converts a built statement to a response DTO
func ToKhataResponse(stmt ledger.Statement) KhataResponse {
	entries := make([]EntryResponse, 0, len(stmt.Entries))
	for _, e := range stmt.Entries {
		entries = append(entries, toEntryResponse(e))
	}
	return KhataResponse{
		Entries: entries,
		Totals: TotalsResponse{
			TotalDebit:              stmt.Totals.TotalDebit,
			TotalCredit:             stmt.Totals.TotalCredit,
			TotalAmount:             stmt.Totals.TotalAmount,
			TotalReceived:           stmt.Totals.TotalReceived,
			FinalBalance:            stmt.Totals.FinalBalance,
			RemainingBalance:        stmt.Totals.RemainingBalance,
			RemainingBalanceDisplay: valueobject.NewMoneyPKR(stmt.Totals.RemainingBalance).Display(),
		},
	}
}
