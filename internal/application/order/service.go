package order

import (
	"context"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles order business operations
type Service struct {
	orderRepo order.Repository
}

// NewService creates a new order Service
func NewService(orderRepo order.Repository) *Service {
	return &Service{orderRepo: orderRepo}
}

// Create creates a new order, assigning the seller's next reference number
// and freezing the computed profit.
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	ref, err := s.orderRepo.NextSellerReference(ctx, tenantID, req.SellerID)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(tenantID, req.SellerID, ref, req.ProductCodes, req.SellerPrice, req.ShipperPrice, req.DeliveryCharge)
	if err != nil {
		return nil, err
	}
	if req.TrackingID != "" {
		o.SetTrackingID(req.TrackingID)
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(o)
	return &resp, nil
}

// GetByID retrieves an order by ID
func (s *Service) GetByID(ctx context.Context, tenantID, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// List retrieves orders with filtering and pagination
func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter OrderListFilter) ([]OrderResponse, int64, error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search
	if filter.Status != "" {
		f.Filters["status"] = order.NormalizeStatus(filter.Status).String()
	}
	if filter.SellerID != nil {
		f.Filters["seller_id"] = *filter.SellerID
	}
	if filter.IsPaid != nil {
		f.Filters["is_paid"] = *filter.IsPaid
	}
	if filter.StartDate != nil {
		f.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		f.Filters["end_date"] = *filter.EndDate
	}

	orders, err := s.orderRepo.FindAllForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.CountForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// Update updates an order's mutable fields. Prices and profit are sealed at
// creation and cannot be changed through this path.
func (s *Service) Update(ctx context.Context, tenantID, orderID uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}

	if req.ProductCodes != nil {
		o.SetProductCodes(*req.ProductCodes)
	}
	if req.TrackingID != nil {
		o.SetTrackingID(*req.TrackingID)
	}

	if err := s.orderRepo.SaveWithLock(ctx, o); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(o)
	return &resp, nil
}

// Confirm transitions an order to confirmed
func (s *Service) Confirm(ctx context.Context, tenantID, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, tenantID, orderID, (*order.Order).Confirm)
}

// Deliver transitions an order to delivered
func (s *Service) Deliver(ctx context.Context, tenantID, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, tenantID, orderID, (*order.Order).Deliver)
}

// Return transitions an order to returned
func (s *Service) Return(ctx context.Context, tenantID, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, tenantID, orderID, (*order.Order).Return)
}

func (s *Service) transition(ctx context.Context, tenantID, orderID uuid.UUID, move func(*order.Order) error) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	if err := move(o); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, o); err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// MarkPaid flags an order as settled with the seller
func (s *Service) MarkPaid(ctx context.Context, tenantID, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	o.MarkPaid()
	if err := s.orderRepo.SaveWithLock(ctx, o); err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// Delete removes an order. Only pending, uninvoiced orders can be deleted.
func (s *Service) Delete(ctx context.Context, tenantID, orderID uuid.UUID) error {
	o, err := s.orderRepo.FindByIDForTenant(ctx, tenantID, orderID)
	if err != nil {
		return err
	}
	if !o.CanDelete() {
		return shared.NewDomainError("INVALID_STATE", "Only pending orders can be deleted")
	}
	return s.orderRepo.DeleteForTenant(ctx, tenantID, orderID)
}

// StatusSummary returns order counts grouped by status
func (s *Service) StatusSummary(ctx context.Context, tenantID uuid.UUID) (*StatusSummaryResponse, error) {
	summary := &StatusSummaryResponse{}
	counts := []struct {
		status order.Status
		dest   *int64
	}{
		{order.StatusPending, &summary.Pending},
		{order.StatusConfirmed, &summary.Confirmed},
		{order.StatusDelivered, &summary.Delivered},
		{order.StatusReturned, &summary.Returned},
	}
	for _, c := range counts {
		n, err := s.orderRepo.CountByStatus(ctx, tenantID, c.status)
		if err != nil {
			return nil, err
		}
		*c.dest = n
		summary.Total += n
	}
	return summary, nil
}
