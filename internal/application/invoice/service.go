package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/invoice"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// SellerLocker serializes invoice generation per seller. Two admins clicking
// generate at the same moment must not both select the same unbilled orders.
type SellerLocker interface {
	// Lock acquires the seller's generation lock and returns its release
	// function. It fails with a conflict error when the lock is held.
	Lock(ctx context.Context, tenantID, sellerID uuid.UUID) (func(), error)
}

// Service handles invoice business operations
type Service struct {
	invoiceRepo invoice.Repository
	orderRepo   order.Repository
	locks       SellerLocker
}

// NewService creates a new invoice Service
func NewService(invoiceRepo invoice.Repository, orderRepo order.Repository, locks SellerLocker) *Service {
	return &Service{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		locks:       locks,
	}
}

// Generate rolls the seller's uninvoiced delivered/returned orders into a new
// invoice. The whole selection-and-link runs under the seller's generation
// lock; the bill number's unique constraint is the second line of defense.
func (s *Service) Generate(ctx context.Context, tenantID uuid.UUID, req GenerateInvoiceRequest) (*InvoiceResponse, error) {
	release, err := s.locks.Lock(ctx, tenantID, req.SellerID)
	if err != nil {
		return nil, err
	}
	defer release()

	billNumber := req.BillNumber
	if billNumber == "" {
		last, err := s.invoiceRepo.LastBillNumber(ctx, tenantID, req.SellerID)
		if err != nil {
			return nil, err
		}
		billNumber, err = invoice.NextBillNumber(last)
		if err != nil {
			return nil, err
		}
	}

	exists, err := s.invoiceRepo.ExistsByBillNumber(ctx, tenantID, billNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Bill number "+billNumber+" is already taken")
	}

	eligible, err := s.orderRepo.FindInvoiceEligible(ctx, tenantID, req.SellerID)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, shared.NewDomainError("NO_ELIGIBLE_ORDERS", "Seller has no uninvoiced delivered or returned orders")
	}

	invoiceDate := time.Now()
	if req.InvoiceDate != nil {
		invoiceDate = *req.InvoiceDate
	}

	inv, err := invoice.NewInvoice(tenantID, req.SellerID, billNumber, invoiceDate, req.OtherExpenses)
	if err != nil {
		return nil, err
	}
	if req.IncludeReturnProfit != nil {
		inv.IncludeReturnProfit = *req.IncludeReturnProfit
	}

	if err := s.invoiceRepo.Save(ctx, inv); err != nil {
		return nil, err
	}

	orderIDs := make([]uuid.UUID, 0, len(eligible))
	for i := range eligible {
		orderIDs = append(orderIDs, eligible[i].ID)
	}
	if err := s.orderRepo.AttachInvoice(ctx, tenantID, inv.ID, orderIDs); err != nil {
		return nil, err
	}

	resp := ToInvoiceResponse(inv, eligible)
	return &resp, nil
}

// GetByID retrieves an invoice with its orders and recomputed totals
func (s *Service) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindByInvoice(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(inv, orders)
	return &resp, nil
}

// List retrieves invoices with filtering and pagination. Totals are
// recomputed per invoice from its current order set.
func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = filter.Search
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

	invoices, err := s.invoiceRepo.FindAllForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.invoiceRepo.CountForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		orders, err := s.orderRepo.FindByInvoice(ctx, tenantID, invoices[i].ID)
		if err != nil {
			return nil, 0, err
		}
		resp := ToInvoiceResponse(&invoices[i], orders)
		resp.Orders = nil // list rows carry totals only
		responses = append(responses, resp)
	}
	return responses, total, nil
}

// MarkPaid flags an invoice as paid
func (s *Service) MarkPaid(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	return s.togglePaid(ctx, tenantID, invoiceID, (*invoice.Invoice).MarkPaid)
}

// MarkUnpaid clears the paid flag
func (s *Service) MarkUnpaid(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	return s.togglePaid(ctx, tenantID, invoiceID, (*invoice.Invoice).MarkUnpaid)
}

func (s *Service) togglePaid(ctx context.Context, tenantID, invoiceID uuid.UUID, toggle func(*invoice.Invoice) error) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := toggle(inv); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.SaveWithLock(ctx, inv); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindByInvoice(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(inv, orders)
	return &resp, nil
}

// Delete removes an unpaid invoice, detaching its orders so they become
// eligible for the next generation run.
func (s *Service) Delete(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	inv, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, invoiceID)
	if err != nil {
		return err
	}
	if !inv.CanDelete() {
		return shared.NewDomainError("INVALID_STATE", "Paid invoices cannot be deleted")
	}
	if err := s.orderRepo.DetachInvoice(ctx, tenantID, invoiceID); err != nil {
		return err
	}
	return s.invoiceRepo.DeleteForTenant(ctx, tenantID, invoiceID)
}

// isNotFound reports whether err is the shared not-found error
func isNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
