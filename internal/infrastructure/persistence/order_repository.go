package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

var _ order.Repository = (*GormOrderRepository)(nil)

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByIDForTenant finds an order by ID within a tenant
func (r *GormOrderRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindBySellerReference finds an order by the seller's reference number
func (r *GormOrderRepository) FindBySellerReference(ctx context.Context, tenantID, sellerID uuid.UUID, sellerReference int64) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND seller_id = ? AND seller_reference = ?", tenantID, sellerID, sellerReference).
		First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindAllForTenant finds all orders for a tenant with filtering
func (r *GormOrderRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	var orders []order.Order
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&order.Order{}).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindInvoiceEligible finds the seller's delivered/returned orders that are
// not yet attached to any invoice. Eligibility is decided by the invoice
// linkage, never by status alone.
func (r *GormOrderRepository) FindInvoiceEligible(ctx context.Context, tenantID, sellerID uuid.UUID) ([]order.Order, error) {
	var orders []order.Order
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND seller_id = ? AND status IN ? AND invoice_id IS NULL",
			tenantID, sellerID, []string{string(order.StatusDelivered), string(order.StatusReturned)}).
		Order("seller_reference ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByInvoice finds all orders attached to an invoice
func (r *GormOrderRepository) FindByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]order.Order, error) {
	var orders []order.Order
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND invoice_id = ?", tenantID, invoiceID).
		Order("seller_reference ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// SaveWithLock updates an order with optimistic locking. Sealed fields
// (seller_price, shipper_price, delivery_charge, profit) are deliberately
// excluded from the update column list.
func (r *GormOrderRepository) SaveWithLock(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentVersion int
		if err := tx.Model(&order.Order{}).
			Where("id = ?", o.ID).
			Select("version").
			Scan(&currentVersion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if currentVersion != o.Version {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The order has been modified by another user")
		}

		o.Version++
		o.UpdatedAt = time.Now()

		result := tx.Model(&order.Order{}).
			Where("id = ? AND version = ?", o.ID, currentVersion).
			Updates(map[string]interface{}{
				"product_codes": o.ProductCodes,
				"status":        o.Status,
				"is_paid":       o.IsPaid,
				"tracking_id":   o.TrackingID,
				"invoice_id":    o.InvoiceID,
				"confirmed_at":  o.ConfirmedAt,
				"delivered_at":  o.DeliveredAt,
				"returned_at":   o.ReturnedAt,
				"version":       o.Version,
				"updated_at":    o.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

// AttachInvoice links orders to an invoice in one transaction. If any order
// is already linked the whole attach fails, preventing double billing.
func (r *GormOrderRepository) AttachInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID, orderIDs []uuid.UUID) error {
	if len(orderIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&order.Order{}).
			Where("tenant_id = ? AND id IN ? AND invoice_id IS NULL", tenantID, orderIDs).
			Updates(map[string]interface{}{
				"invoice_id": invoiceID,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(orderIDs)) {
			return shared.NewDomainError("ALREADY_INVOICED", "One or more orders are already attached to an invoice")
		}
		return nil
	})
}

// DetachInvoice clears the invoice linkage for all orders of an invoice
func (r *GormOrderRepository) DetachInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&order.Order{}).
		Where("tenant_id = ? AND invoice_id = ?", tenantID, invoiceID).
		Updates(map[string]interface{}{
			"invoice_id": nil,
			"updated_at": time.Now(),
		}).Error
}

// DeleteForTenant deletes an order within a tenant
func (r *GormOrderRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&order.Order{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts orders for a tenant with filtering
func (r *GormOrderRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&order.Order{}).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts a tenant's orders in one status
func (r *GormOrderRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status order.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&order.Order{}).
		Where("tenant_id = ? AND status = ?", tenantID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NextSellerReference returns the seller's next monotonic reference number
func (r *GormOrderRepository) NextSellerReference(ctx context.Context, tenantID, sellerID uuid.UUID) (int64, error) {
	var maxRef int64
	if err := r.db.WithContext(ctx).Model(&order.Order{}).
		Where("tenant_id = ? AND seller_id = ?", tenantID, sellerID).
		Select("COALESCE(MAX(seller_reference), 0)").
		Scan(&maxRef).Error; err != nil {
		return 0, err
	}
	return maxRef + 1, nil
}

// applyFilter applies filter options including pagination
func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormOrderRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("product_codes ILIKE ? OR tracking_id ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "seller_id":
			query = query.Where("seller_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "is_paid":
			query = query.Where("is_paid = ?", value)
		case "invoice_id":
			query = query.Where("invoice_id = ?", value)
		case "start_date":
			query = query.Where("created_at >= ?", value)
		case "end_date":
			query = query.Where("created_at <= ?", value)
		}
	}

	return query
}
