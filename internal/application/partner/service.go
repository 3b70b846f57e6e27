package partner

import (
	"context"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/partner"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles seller business operations
type Service struct {
	sellerRepo partner.Repository
	orderRepo  order.Repository
}

// NewService creates a new seller Service
func NewService(sellerRepo partner.Repository, orderRepo order.Repository) *Service {
	return &Service{
		sellerRepo: sellerRepo,
		orderRepo:  orderRepo,
	}
}

// Create creates a new seller
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req CreateSellerRequest) (*SellerResponse, error) {
	seller, err := partner.NewSeller(tenantID, req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.sellerRepo.Save(ctx, seller); err != nil {
		return nil, err
	}
	resp := ToSellerResponse(seller)
	return &resp, nil
}

// GetByID retrieves a seller by ID
func (s *Service) GetByID(ctx context.Context, tenantID, sellerID uuid.UUID) (*SellerResponse, error) {
	seller, err := s.sellerRepo.FindByIDForTenant(ctx, tenantID, sellerID)
	if err != nil {
		return nil, err
	}
	resp := ToSellerResponse(seller)
	return &resp, nil
}

// List retrieves sellers with pagination
func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]SellerResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	sellers, err := s.sellerRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.sellerRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SellerResponse, 0, len(sellers))
	for i := range sellers {
		responses = append(responses, ToSellerResponse(&sellers[i]))
	}
	return responses, total, nil
}

// Update updates a seller's contact fields
func (s *Service) Update(ctx context.Context, tenantID, sellerID uuid.UUID, req UpdateSellerRequest) (*SellerResponse, error) {
	seller, err := s.sellerRepo.FindByIDForTenant(ctx, tenantID, sellerID)
	if err != nil {
		return nil, err
	}
	if err := seller.Update(req.Name, req.Phone, req.Email, req.Address); err != nil {
		return nil, err
	}
	if err := s.sellerRepo.SaveWithLock(ctx, seller); err != nil {
		return nil, err
	}
	resp := ToSellerResponse(seller)
	return &resp, nil
}

// Deactivate marks a seller inactive instead of deleting order history
func (s *Service) Deactivate(ctx context.Context, tenantID, sellerID uuid.UUID) (*SellerResponse, error) {
	seller, err := s.sellerRepo.FindByIDForTenant(ctx, tenantID, sellerID)
	if err != nil {
		return nil, err
	}
	seller.Deactivate()
	if err := s.sellerRepo.SaveWithLock(ctx, seller); err != nil {
		return nil, err
	}
	resp := ToSellerResponse(seller)
	return &resp, nil
}

// Delete removes a seller with no orders
func (s *Service) Delete(ctx context.Context, tenantID, sellerID uuid.UUID) error {
	if _, err := s.sellerRepo.FindByIDForTenant(ctx, tenantID, sellerID); err != nil {
		return err
	}

	f := shared.DefaultFilter()
	f.Filters["seller_id"] = sellerID
	count, err := s.orderRepo.CountForTenant(ctx, tenantID, f)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("INVALID_STATE", "Seller has orders and cannot be deleted")
	}

	return s.sellerRepo.DeleteForTenant(ctx, tenantID, sellerID)
}

// LastReference returns the seller's highest assigned reference number
func (s *Service) LastReference(ctx context.Context, tenantID, sellerID uuid.UUID) (int64, error) {
	next, err := s.orderRepo.NextSellerReference(ctx, tenantID, sellerID)
	if err != nil {
		return 0, err
	}
	return next - 1, nil
}
