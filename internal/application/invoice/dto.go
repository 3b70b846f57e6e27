package invoice

import (
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/invoice"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GenerateInvoiceRequest represents a request to generate a seller invoice
type GenerateInvoiceRequest struct {
	SellerID      uuid.UUID       `json:"seller_id" binding:"required"`
	BillNumber    string          `json:"bill_number"`
	InvoiceDate   *time.Time      `json:"invoice_date"`
	OtherExpenses decimal.Decimal `json:"other_expenses"`
	// Accepted and recorded; the totals engine currently always includes
	// return charge-backs regardless of this flag.
	IncludeReturnProfit *bool `json:"include_return_profit"`
}

// InvoiceListFilter represents filtering options for listing invoices
type InvoiceListFilter struct {
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
	SellerID  *uuid.UUID `form:"seller_id"`
	IsPaid    *bool      `form:"is_paid"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
	Search    string     `form:"search"`
}

// TotalsResponse represents the financial totals of an invoice, recomputed
// from the linked orders on every read
type TotalsResponse struct {
	TotalOrders          int             `json:"total_orders"`
	DeliveredOrders      int             `json:"delivered_orders"`
	ReturnOrders         int             `json:"return_orders"`
	TotalProfit          decimal.Decimal `json:"total_profit"`
	DeliveredSellerPrice decimal.Decimal `json:"delivered_seller_price"`
	Tax                  decimal.Decimal `json:"tax"`
	OtherExpenses        decimal.Decimal `json:"other_expenses"`
	NetProfit            decimal.Decimal `json:"net_profit"`
	NetProfitDisplay     string          `json:"net_profit_display"`
}

// InvoiceOrderResponse is one order row on an invoice
type InvoiceOrderResponse struct {
	ID              uuid.UUID       `json:"id"`
	SellerReference int64           `json:"seller_reference"`
	ProductCodes    string          `json:"product_codes"`
	Status          string          `json:"status"`
	SellerPrice     decimal.Decimal `json:"seller_price"`
	DeliveryCharge  decimal.Decimal `json:"delivery_charge"`
	Profit          decimal.Decimal `json:"profit"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID                  uuid.UUID              `json:"id"`
	SellerID            uuid.UUID              `json:"seller_id"`
	BillNumber          string                 `json:"bill_number"`
	InvoiceDate         time.Time              `json:"invoice_date"`
	IncludeReturnProfit bool                   `json:"include_return_profit"`
	IsPaid              bool                   `json:"is_paid"`
	PaidAt              *time.Time             `json:"paid_at,omitempty"`
	Totals              TotalsResponse         `json:"totals"`
	Orders              []InvoiceOrderResponse `json:"orders,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
}

// MatchStatementRequest represents a parsed seller statement to reconcile
type MatchStatementRequest struct {
	SellerID uuid.UUID           `json:"seller_id" binding:"required"`
	Rows     []StatementRowInput `json:"rows" binding:"required,min=1"`
}

// StatementRowInput is one uploaded statement row
type StatementRowInput struct {
	SellerReference int64           `json:"seller_reference" binding:"required"`
	InvoiceNumber   string          `json:"invoice_number"`
	Profit          decimal.Decimal `json:"profit"`
}

func toTotalsResponse(t invoice.Totals) TotalsResponse {
	return TotalsResponse{
		TotalOrders:          t.TotalOrders,
		DeliveredOrders:      t.DeliveredOrders,
		ReturnOrders:         t.ReturnOrders,
		TotalProfit:          t.TotalProfit,
		DeliveredSellerPrice: t.DeliveredSellerPrice,
		Tax:                  t.Tax,
		OtherExpenses:        t.OtherExpenses,
		NetProfit:            t.NetProfit,
		NetProfitDisplay:     valueobject.NewMoneyPKR(t.NetProfit).Display(),
	}
}

func toInvoiceOrderResponses(orders []order.Order) []InvoiceOrderResponse {
	rows := make([]InvoiceOrderResponse, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		rows = append(rows, InvoiceOrderResponse{
			ID:              o.ID,
			SellerReference: o.SellerReference,
			ProductCodes:    o.ProductCodes,
			Status:          o.Status.String(),
			SellerPrice:     o.SellerPrice,
			DeliveryCharge:  o.DeliveryCharge,
			Profit:          o.Profit,
		})
	}
	return rows
}

// ToInvoiceResponse converts a domain invoice plus its linked orders to a
// response DTO, recomputing the totals from the order set
func ToInvoiceResponse(inv *invoice.Invoice, orders []order.Order) InvoiceResponse {
	return InvoiceResponse{
		ID:                  inv.ID,
		SellerID:            inv.SellerID,
		BillNumber:          inv.BillNumber,
		InvoiceDate:         inv.InvoiceDate,
		IncludeReturnProfit: inv.IncludeReturnProfit,
		IsPaid:              inv.IsPaid,
		PaidAt:              inv.PaidAt,
		Totals:              toTotalsResponse(invoice.ComputeTotals(orders, inv.OtherExpenses)),
		Orders:              toInvoiceOrderResponses(orders),
		CreatedAt:           inv.CreatedAt,
	}
}
