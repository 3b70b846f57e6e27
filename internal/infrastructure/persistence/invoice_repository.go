package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/invoice"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements invoice.Repository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

var _ invoice.Repository = (*GormInvoiceRepository)(nil)

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	if err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindByIDForTenant finds an invoice by ID within a tenant
func (r *GormInvoiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindByBillNumber finds an invoice by bill number for a tenant
func (r *GormInvoiceRepository) FindByBillNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND bill_number = ?", tenantID, billNumber).
		First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// FindAllForTenant finds all invoices for a tenant with filtering
func (r *GormInvoiceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]invoice.Invoice, error) {
	var invoices []invoice.Invoice
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&invoice.Invoice{}).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Save creates or updates an invoice. The unique bill number constraint is
// mapped to a conflict error so a racing duplicate surfaces as retryable.
func (r *GormInvoiceRepository) Save(ctx context.Context, inv *invoice.Invoice) error {
	if err := r.db.WithContext(ctx).Save(inv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.NewDomainError("ALREADY_EXISTS", "Bill number "+inv.BillNumber+" is already taken")
		}
		return err
	}
	return nil
}

// SaveWithLock updates an invoice with optimistic locking
func (r *GormInvoiceRepository) SaveWithLock(ctx context.Context, inv *invoice.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentVersion int
		if err := tx.Model(&invoice.Invoice{}).
			Where("id = ?", inv.ID).
			Select("version").
			Scan(&currentVersion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if currentVersion != inv.Version {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The invoice has been modified by another user")
		}

		inv.Version++
		inv.UpdatedAt = time.Now()

		result := tx.Model(&invoice.Invoice{}).
			Where("id = ? AND version = ?", inv.ID, currentVersion).
			Updates(map[string]interface{}{
				"other_expenses":        inv.OtherExpenses,
				"include_return_profit": inv.IncludeReturnProfit,
				"is_paid":               inv.IsPaid,
				"paid_at":               inv.PaidAt,
				"version":               inv.Version,
				"updated_at":            inv.UpdatedAt,
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

// DeleteForTenant deletes an invoice within a tenant
func (r *GormInvoiceRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&invoice.Invoice{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts invoices for a tenant with filtering
func (r *GormInvoiceRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&invoice.Invoice{}).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByBillNumber checks if a bill number is already taken for a tenant
func (r *GormInvoiceRepository) ExistsByBillNumber(ctx context.Context, tenantID uuid.UUID, billNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&invoice.Invoice{}).
		Where("tenant_id = ? AND bill_number = ?", tenantID, billNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// LastBillNumber returns the seller's highest generated bill number, or ""
// when the seller has no invoices yet. Ordering is numeric: bill numbers are
// zero-padded but can outgrow the padding (INV-999 then INV-1000).
func (r *GormInvoiceRepository) LastBillNumber(ctx context.Context, tenantID, sellerID uuid.UUID) (string, error) {
	var last string
	err := r.db.WithContext(ctx).Model(&invoice.Invoice{}).
		Where("tenant_id = ? AND seller_id = ? AND bill_number LIKE ?", tenantID, sellerID, invoice.BillNumberPrefix+"%").
		Order("LENGTH(bill_number) DESC, bill_number DESC").
		Limit(1).
		Pluck("bill_number", &last).Error
	if err != nil {
		return "", err
	}
	return last, nil
}

func (r *GormInvoiceRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("invoice_date DESC")
	}

	return query
}

func (r *GormInvoiceRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("bill_number ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "seller_id":
			query = query.Where("seller_id = ?", value)
		case "is_paid":
			query = query.Where("is_paid = ?", value)
		case "start_date":
			query = query.Where("invoice_date >= ?", value)
		case "end_date":
			query = query.Where("invoice_date <= ?", value)
		}
	}

	return query
}
