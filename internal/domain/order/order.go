package order

import (
	"strings"
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle status of an order
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDelivered Status = "delivered"
	StatusReturned  Status = "returned"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDelivered, StatusReturned:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusReturned
	case StatusConfirmed:
		return target == StatusDelivered || target == StatusReturned
	case StatusDelivered:
		// Courier return scan after delivery
		return target == StatusReturned
	case StatusReturned:
		return false
	}
	return false
}

// NormalizeStatus maps free-form status text (uploads, legacy rows) onto a
// canonical Status. "return" and "returned" are the same state.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending
	case "confirmed":
		return StatusConfirmed
	case "delivered":
		return StatusDelivered
	case "return", "returned":
		return StatusReturned
	}
	return Status(strings.ToLower(strings.TrimSpace(raw)))
}

// ComputeProfit computes the order profit from its price components:
// sellerPrice - (shipperPrice or 0) - deliveryCharge.
// An unknown shipper price contributes zero here; display paths must use
// DisplayProfit so that unknown stays visible as unknown.
func ComputeProfit(sellerPrice decimal.Decimal, shipperPrice *decimal.Decimal, deliveryCharge decimal.Decimal) decimal.Decimal {
	shipper := decimal.Zero
	if shipperPrice != nil {
		shipper = *shipperPrice
	}
	return sellerPrice.Sub(shipper).Sub(deliveryCharge)
}

// Order represents a seller order aggregate root.
//
// SellerPrice, ShipperPrice, DeliveryCharge and Profit are sealed once the
// order is persisted: profit is computed exactly once at creation and later
// edits to other fields must never silently rewrite it.
type Order struct {
	shared.TenantAggregateRoot
	SellerID        uuid.UUID
	SellerReference int64  // unique per seller, monotonically assigned
	ProductCodes    string // comma-joined, duplicates meaningful
	Status          Status
	SellerPrice     decimal.Decimal
	ShipperPrice    *decimal.Decimal // nil = unknown, distinct from zero
	DeliveryCharge  decimal.Decimal
	Profit          decimal.Decimal // computed at creation, frozen
	IsPaid          bool
	TrackingID      string
	InvoiceID       *uuid.UUID // set when the order is rolled into an invoice
	ConfirmedAt     *time.Time
	DeliveredAt     *time.Time
	ReturnedAt      *time.Time
}

// NewOrder creates a new order and computes its profit once.
func NewOrder(tenantID, sellerID uuid.UUID, sellerReference int64, productCodes string, sellerPrice decimal.Decimal, shipperPrice *decimal.Decimal, deliveryCharge decimal.Decimal) (*Order, error) {
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLER", "Seller ID cannot be empty")
	}
	if sellerReference <= 0 {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Seller reference must be positive")
	}
	if sellerPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Seller price cannot be negative")
	}
	if shipperPrice != nil && shipperPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Shipper price cannot be negative")
	}
	if deliveryCharge.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_DELIVERY_CHARGE", "Delivery charge is required and must be positive")
	}

	return &Order{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		SellerID:            sellerID,
		SellerReference:     sellerReference,
		ProductCodes:        strings.TrimSpace(productCodes),
		Status:              StatusPending,
		SellerPrice:         sellerPrice,
		ShipperPrice:        shipperPrice,
		DeliveryCharge:      deliveryCharge,
		Profit:              ComputeProfit(sellerPrice, shipperPrice, deliveryCharge),
	}, nil
}

// DisplayProfit recomputes a profit figure from the current stored components
// for display sanity-checks. Returns nil when the shipper price is unknown,
// so callers render "-" instead of a fabricated zero. The stored Profit field
// remains the authoritative figure.
func (o *Order) DisplayProfit() *decimal.Decimal {
	if o.ShipperPrice == nil {
		return nil
	}
	p := ComputeProfit(o.SellerPrice, o.ShipperPrice, o.DeliveryCharge)
	return &p
}

// transition moves the order to the target status or fails with INVALID_STATE.
func (o *Order) transition(target Status) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", "Order cannot move from "+o.Status.String()+" to "+target.String())
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// Confirm marks the order as confirmed by the admin.
func (o *Order) Confirm() error {
	if err := o.transition(StatusConfirmed); err != nil {
		return err
	}
	now := time.Now()
	o.ConfirmedAt = &now
	return nil
}

// Deliver marks the order as delivered.
func (o *Order) Deliver() error {
	if err := o.transition(StatusDelivered); err != nil {
		return err
	}
	now := time.Now()
	o.DeliveredAt = &now
	return nil
}

// Return marks the order as returned.
func (o *Order) Return() error {
	if err := o.transition(StatusReturned); err != nil {
		return err
	}
	now := time.Now()
	o.ReturnedAt = &now
	return nil
}

// SetProductCodes replaces the product code list.
func (o *Order) SetProductCodes(codes string) {
	o.ProductCodes = strings.TrimSpace(codes)
	o.UpdatedAt = time.Now()
}

// SetTrackingID sets the courier tracking ID.
func (o *Order) SetTrackingID(trackingID string) {
	o.TrackingID = strings.TrimSpace(trackingID)
	o.UpdatedAt = time.Now()
}

// MarkPaid flags the order as settled with the seller.
func (o *Order) MarkPaid() {
	o.IsPaid = true
	o.UpdatedAt = time.Now()
}

// MarkUnpaid clears the settled flag.
func (o *Order) MarkUnpaid() {
	o.IsPaid = false
	o.UpdatedAt = time.Now()
}

// IsInvoiced reports whether the order has been rolled into an invoice.
func (o *Order) IsInvoiced() bool {
	return o.InvoiceID != nil
}

// InvoiceEligible reports whether the order can be included in a new invoice:
// it is delivered or returned and not yet linked to any invoice.
func (o *Order) InvoiceEligible() bool {
	return !o.IsInvoiced() && (o.Status == StatusDelivered || o.Status == StatusReturned)
}

// AttachToInvoice links the order to an invoice. The linkage is the single
// source of truth for "already billed"; status alone never decides it.
func (o *Order) AttachToInvoice(invoiceID uuid.UUID) error {
	if invoiceID == uuid.Nil {
		return shared.NewDomainError("INVALID_INVOICE", "Invoice ID cannot be empty")
	}
	if o.IsInvoiced() {
		return shared.NewDomainError("ALREADY_INVOICED", "Order is already attached to an invoice")
	}
	if !o.InvoiceEligible() {
		return shared.NewDomainError("INVALID_STATE", "Only delivered or returned orders can be invoiced")
	}
	o.InvoiceID = &invoiceID
	o.UpdatedAt = time.Now()
	return nil
}

// DetachFromInvoice unlinks the order when its invoice is deleted.
func (o *Order) DetachFromInvoice() {
	o.InvoiceID = nil
	o.UpdatedAt = time.Now()
}

// CanDelete reports whether the order may be removed (pending only).
func (o *Order) CanDelete() bool {
	return o.Status == StatusPending && !o.IsInvoiced()
}

// TableName returns the database table name for GORM
func (Order) TableName() string {
	return "orders"
}
