package order

import (
	"context"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines persistence operations for orders
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Order, error)
	// FindBySellerReference looks an order up by the seller's own reference
	// number, the primary key used during statement matching.
	FindBySellerReference(ctx context.Context, tenantID, sellerID uuid.UUID, sellerReference int64) (*Order, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Order, error)
	// FindInvoiceEligible returns the seller's delivered/returned orders that
	// are not yet attached to any invoice, ordered by seller reference.
	FindInvoiceEligible(ctx context.Context, tenantID, sellerID uuid.UUID) ([]Order, error)
	FindByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]Order, error)
	Save(ctx context.Context, o *Order) error
	SaveWithLock(ctx context.Context, o *Order) error
	// AttachInvoice links the given orders to an invoice in one transaction,
	// refusing orders that are already linked.
	AttachInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID, orderIDs []uuid.UUID) error
	// DetachInvoice clears the invoice linkage for all orders of an invoice.
	DetachInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	CountByStatus(ctx context.Context, tenantID uuid.UUID, status Status) (int64, error)
	// NextSellerReference returns the seller's next monotonic reference number.
	NextSellerReference(ctx context.Context, tenantID, sellerID uuid.UUID) (int64, error)
}
