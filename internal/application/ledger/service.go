package ledger

import (
	"context"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/ledger"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles khata ledger business operations
type Service struct {
	customerRepo ledger.CustomerRepository
	entryRepo    ledger.EntryRepository
}

// NewService creates a new ledger Service
func NewService(customerRepo ledger.CustomerRepository, entryRepo ledger.EntryRepository) *Service {
	return &Service{
		customerRepo: customerRepo,
		entryRepo:    entryRepo,
	}
}

func (f KhataFilter) toLineFilter() ledger.LineFilter {
	return ledger.LineFilter{
		CustomerID: f.CustomerID,
		BillNumber: f.BillNumber,
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
	}
}

// Khata returns the filtered ledger statement with running balances and
// totals. Balances are always rebuilt from scratch, never read from rows.
func (s *Service) Khata(ctx context.Context, tenantID uuid.UUID, filter KhataFilter) (*KhataResponse, error) {
	lines, err := s.entryRepo.FindLines(ctx, tenantID, filter.toLineFilter())
	if err != nil {
		return nil, err
	}
	resp := ToKhataResponse(ledger.BuildStatement(lines))
	return &resp, nil
}

// RecordBill records a debit entry against a customer. The returned balance
// is the customer's outstanding balance after the new debit, not the debit
// amount alone.
func (s *Service) RecordBill(ctx context.Context, tenantID uuid.UUID, req RecordBillRequest) (*EntryResponse, error) {
	if _, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, req.CustomerID); err != nil {
		return nil, err
	}

	lines, err := s.entryRepo.FindLines(ctx, tenantID, ledger.LineFilter{CustomerID: &req.CustomerID})
	if err != nil {
		return nil, err
	}
	stmt := ledger.BuildStatement(lines)

	entry, err := ledger.NewBillEntry(tenantID, req.CustomerID, req.BillNumber, req.Description, req.Amount, req.EntryDate)
	if err != nil {
		return nil, err
	}
	if err := s.entryRepo.CreateBill(ctx, entry); err != nil {
		return nil, err
	}

	resp := toEntryResponse(ledger.Entry{Line: entry, Balance: stmt.Totals.RemainingBalance.Add(entry.Debit)})
	return &resp, nil
}

// RecordPayment records a credit entry against a customer. The amount is
// validated against the current remaining balance here for a fast error, and
// re-checked by the repository inside the insert transaction.
func (s *Service) RecordPayment(ctx context.Context, tenantID uuid.UUID, req RecordPaymentRequest) (*EntryResponse, error) {
	if _, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, req.CustomerID); err != nil {
		return nil, err
	}

	lines, err := s.entryRepo.FindLines(ctx, tenantID, ledger.LineFilter{CustomerID: &req.CustomerID})
	if err != nil {
		return nil, err
	}
	stmt := ledger.BuildStatement(lines)
	if err := ledger.ValidatePaymentAmount(req.Amount, stmt.Totals.RemainingBalance); err != nil {
		return nil, err
	}

	entry, err := ledger.NewPaymentEntry(tenantID, req.CustomerID, req.Amount, req.PaymentMethod, req.TransactionID, req.ReceivedBy, req.Description, req.PaymentDate)
	if err != nil {
		return nil, err
	}
	if err := s.entryRepo.CreatePaymentWithBalanceGuard(ctx, entry); err != nil {
		return nil, err
	}

	resp := toEntryResponse(ledger.Entry{Line: entry, Balance: stmt.Totals.RemainingBalance.Sub(entry.Amount)})
	return &resp, nil
}

// DeletePayment removes a payment entry
func (s *Service) DeletePayment(ctx context.Context, tenantID, paymentID uuid.UUID) error {
	if _, err := s.entryRepo.FindPaymentByID(ctx, tenantID, paymentID); err != nil {
		return err
	}
	return s.entryRepo.DeletePayment(ctx, tenantID, paymentID)
}

// DeleteBillEntry removes a bill entry. A bill with any payment dated on or
// after it is part of settled history and cannot be deleted.
func (s *Service) DeleteBillEntry(ctx context.Context, tenantID, billID uuid.UUID) error {
	bill, err := s.entryRepo.FindBillByID(ctx, tenantID, billID)
	if err != nil {
		return err
	}

	referenced, err := s.entryRepo.HasPaymentOnOrAfter(ctx, tenantID, bill.CustomerID, bill.EntryDate)
	if err != nil {
		return err
	}
	if referenced {
		return shared.NewDomainError("BILL_REFERENCED", "Bill entry has payments recorded against it and cannot be deleted")
	}

	return s.entryRepo.DeleteBill(ctx, tenantID, billID)
}

// CreateCustomer creates a khata customer
func (s *Service) CreateCustomer(ctx context.Context, tenantID uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	c, err := ledger.NewCustomer(tenantID, req.Name, req.Phone, req.Party)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(c)
	return &resp, nil
}

// GetCustomer retrieves a khata customer by ID
func (s *Service) GetCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(c)
	return &resp, nil
}

// ListCustomers retrieves khata customers with pagination
func (s *Service) ListCustomers(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]CustomerResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	customers, err := s.customerRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, ToCustomerResponse(&customers[i]))
	}
	return responses, total, nil
}

// UpdateCustomer updates a khata customer
func (s *Service) UpdateCustomer(ctx context.Context, tenantID, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	if err := c.Update(req.Name, req.Phone, req.Party); err != nil {
		return nil, err
	}
	if err := s.customerRepo.SaveWithLock(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(c)
	return &resp, nil
}

// DeleteCustomer removes a khata customer with no remaining balance
func (s *Service) DeleteCustomer(ctx context.Context, tenantID, customerID uuid.UUID) error {
	if _, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID); err != nil {
		return err
	}

	lines, err := s.entryRepo.FindLines(ctx, tenantID, ledger.LineFilter{CustomerID: &customerID})
	if err != nil {
		return err
	}
	stmt := ledger.BuildStatement(lines)
	if !stmt.Totals.RemainingBalance.IsZero() {
		return shared.NewDomainError("INVALID_STATE", "Customer still has an outstanding balance")
	}

	return s.customerRepo.DeleteForTenant(ctx, tenantID, customerID)
}
