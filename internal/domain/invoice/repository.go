package invoice

import (
	"context"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines persistence operations for invoices
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)
	FindByBillNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) (*Invoice, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Invoice, error)
	Save(ctx context.Context, inv *Invoice) error
	SaveWithLock(ctx context.Context, inv *Invoice) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsByBillNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) (bool, error)
	// LastBillNumber returns the seller's highest generated bill number,
	// or "" when the seller has no invoices yet.
	LastBillNumber(ctx context.Context, tenantID, sellerID uuid.UUID) (string, error)
}
