package partner

import (
	"context"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines persistence operations for sellers
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Seller, error)
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Seller, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Seller, error)
	Save(ctx context.Context, s *Seller) error
	SaveWithLock(ctx context.Context, s *Seller) error
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
