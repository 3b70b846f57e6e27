package order

import (
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	SellerID       uuid.UUID        `json:"seller_id" binding:"required"`
	ProductCodes   string           `json:"product_codes"`
	SellerPrice    decimal.Decimal  `json:"seller_price" binding:"required"`
	ShipperPrice   *decimal.Decimal `json:"shipper_price"`
	DeliveryCharge decimal.Decimal  `json:"delivery_charge" binding:"required"`
	TrackingID     string           `json:"tracking_id"`
}

// UpdateOrderRequest represents a request to update an order. Price fields
// and profit are sealed after creation and are deliberately absent here.
type UpdateOrderRequest struct {
	ProductCodes *string `json:"product_codes"`
	TrackingID   *string `json:"tracking_id"`
}

// OrderListFilter represents filtering options for listing orders
type OrderListFilter struct {
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
	Status    string     `form:"status"`
	SellerID  *uuid.UUID `form:"seller_id"`
	IsPaid    *bool      `form:"is_paid"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
	Search    string     `form:"search"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID        `json:"id"`
	SellerID        uuid.UUID        `json:"seller_id"`
	SellerReference int64            `json:"seller_reference"`
	ProductCodes    string           `json:"product_codes"`
	Status          string           `json:"status"`
	SellerPrice     decimal.Decimal  `json:"seller_price"`
	ShipperPrice    *decimal.Decimal `json:"shipper_price"`
	DeliveryCharge  decimal.Decimal  `json:"delivery_charge"`
	Profit          decimal.Decimal  `json:"profit"`
	ProfitDisplay   string           `json:"profit_display"`
	IsPaid          bool             `json:"is_paid"`
	TrackingID      string           `json:"tracking_id"`
	InvoiceID       *uuid.UUID       `json:"invoice_id,omitempty"`
	ConfirmedAt     *time.Time       `json:"confirmed_at,omitempty"`
	DeliveredAt     *time.Time       `json:"delivered_at,omitempty"`
	ReturnedAt      *time.Time       `json:"returned_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// StatusSummaryResponse represents order counts grouped by status
type StatusSummaryResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Delivered int64 `json:"delivered"`
	Returned  int64 `json:"returned"`
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID,
		SellerID:        o.SellerID,
		SellerReference: o.SellerReference,
		ProductCodes:    o.ProductCodes,
		Status:          o.Status.String(),
		SellerPrice:     o.SellerPrice,
		ShipperPrice:    o.ShipperPrice,
		DeliveryCharge:  o.DeliveryCharge,
		Profit:          o.Profit,
		ProfitDisplay:   "-",
		IsPaid:          o.IsPaid,
		TrackingID:      o.TrackingID,
		InvoiceID:       o.InvoiceID,
		ConfirmedAt:     o.ConfirmedAt,
		DeliveredAt:     o.DeliveredAt,
		ReturnedAt:      o.ReturnedAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	// Unknown shipper price renders as "-", never as a fabricated zero.
	if dp := o.DisplayProfit(); dp != nil {
		resp.ProfitDisplay = valueobject.NewMoneyPKR(*dp).Display()
	}
	return resp
}

// ToOrderResponses converts a slice of domain orders
func ToOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses
}
