package invoice

import (
	"context"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/invoice"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/google/uuid"
)

// MatchService reconciles seller-provided statements against system orders.
// It is strictly read-only: running a match never mutates orders or invoices.
type MatchService struct {
	invoiceRepo invoice.Repository
	orderRepo   order.Repository
}

// NewMatchService creates a new MatchService
func NewMatchService(invoiceRepo invoice.Repository, orderRepo order.Repository) *MatchService {
	return &MatchService{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
	}
}

// MatchStatement classifies every statement row into one of the five
// reconciliation outcomes. A row is never dropped or rejected; lookup
// failures become the not_found outcome, not errors.
func (s *MatchService) MatchStatement(ctx context.Context, tenantID uuid.UUID, req MatchStatementRequest) (*invoice.MatchResult, error) {
	result := &invoice.MatchResult{}
	paidByInvoice := make(map[uuid.UUID]bool)

	for _, input := range req.Rows {
		row := invoice.StatementRow{
			SellerReference: input.SellerReference,
			InvoiceNumber:   input.InvoiceNumber,
			Profit:          input.Profit,
		}

		o, err := s.orderRepo.FindBySellerReference(ctx, tenantID, req.SellerID, row.SellerReference)
		if err != nil {
			if isNotFound(err) {
				result.Add(invoice.Classify(row, nil, false))
				continue
			}
			return nil, err
		}

		invoicePaid := false
		if o.InvoiceID != nil {
			paid, ok := paidByInvoice[*o.InvoiceID]
			if !ok {
				inv, err := s.invoiceRepo.FindByIDForTenant(ctx, tenantID, *o.InvoiceID)
				if err != nil {
					if !isNotFound(err) {
						return nil, err
					}
					// Dangling linkage; treat as unpaid rather than failing
					// the whole statement.
					paid = false
				} else {
					paid = inv.IsPaid
				}
				paidByInvoice[*o.InvoiceID] = paid
			}
			invoicePaid = paid
		}

		result.Add(invoice.Classify(row, o, invoicePaid))
	}

	return result, nil
}
