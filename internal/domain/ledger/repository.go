package ledger

import (
	"context"
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// LineFilter narrows a khata query. Zero-value fields are ignored.
type LineFilter struct {
	CustomerID *uuid.UUID
	BillNumber string
	StartDate  *time.Time
	EndDate    *time.Time
}

// CustomerRepository defines persistence operations for ledger customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Customer, error)
	Save(ctx context.Context, c *Customer) error
	SaveWithLock(ctx context.Context, c *Customer) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// EntryRepository defines persistence operations for bill and payment lines
type EntryRepository interface {
	// FindLines returns bill and payment entries matching the filter,
	// unordered. Ordering is BuildStatement's job.
	FindLines(ctx context.Context, tenantID uuid.UUID, filter LineFilter) ([]Line, error)

	FindBillByID(ctx context.Context, tenantID, id uuid.UUID) (*BillEntry, error)
	FindPaymentByID(ctx context.Context, tenantID, id uuid.UUID) (*PaymentEntry, error)

	CreateBill(ctx context.Context, e *BillEntry) error

	// CreatePaymentWithBalanceGuard inserts the payment only if its amount
	// does not exceed the customer's remaining balance, with the balance
	// re-read inside the same transaction as the insert.
	CreatePaymentWithBalanceGuard(ctx context.Context, e *PaymentEntry) error

	// HasPaymentOnOrAfter reports whether the customer has any payment
	// dated on or after the given date. Bill entries with later payments
	// against them are not deletable.
	HasPaymentOnOrAfter(ctx context.Context, tenantID, customerID uuid.UUID, date time.Time) (bool, error)

	DeleteBill(ctx context.Context, tenantID, id uuid.UUID) error
	DeletePayment(ctx context.Context, tenantID, id uuid.UUID) error
}
