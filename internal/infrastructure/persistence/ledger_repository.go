package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/ledger"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ledger.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

var _ ledger.CustomerRepository = (*GormCustomerRepository)(nil)

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Customer, error) {
	var c ledger.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Customer, error) {
	var c ledger.Customer
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]ledger.Customer, error) {
	var customers []ledger.Customer
	query := r.db.WithContext(ctx).Model(&ledger.Customer{}).Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR party ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}
	if party, ok := filter.Filters["party"]; ok {
		query = query.Where("party = ?", party)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	orderBy := "name ASC"
	if filter.OrderBy != "" {
		dir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			dir = "DESC"
		}
		orderBy = filter.OrderBy + " " + dir
	}

	if err := query.Order(orderBy).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *GormCustomerRepository) Save(ctx context.Context, c *ledger.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *GormCustomerRepository) SaveWithLock(ctx context.Context, c *ledger.Customer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var currentVersion int
		if err := tx.Model(&ledger.Customer{}).
			Where("id = ?", c.ID).
			Select("version").
			Scan(&currentVersion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if currentVersion != c.Version {
			return shared.NewDomainError("CONCURRENT_MODIFICATION", "The customer has been modified by another user")
		}

		c.Version++
		c.UpdatedAt = time.Now()

		result := tx.Model(&ledger.Customer{}).
			Where("id = ? AND version = ?", c.ID, currentVersion).
			Updates(map[string]interface{}{
				"name":       c.Name,
				"phone":      c.Phone,
				"party":      c.Party,
				"version":    c.Version,
				"updated_at": c.UpdatedAt,
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

func (r *GormCustomerRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&ledger.Customer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCustomerRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&ledger.Customer{}).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR party ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormEntryRepository implements ledger.EntryRepository using GORM
type GormEntryRepository struct {
	db *gorm.DB
}

var _ ledger.EntryRepository = (*GormEntryRepository)(nil)

// NewGormEntryRepository creates a new GormEntryRepository
func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

func applyLineFilter(query *gorm.DB, filter ledger.LineFilter, billNumberColumn bool) *gorm.DB {
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.BillNumber != "" && billNumberColumn {
		query = query.Where("bill_number = ?", filter.BillNumber)
	}
	if filter.StartDate != nil {
		query = query.Where("entry_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("entry_date <= ?", *filter.EndDate)
	}
	return query
}

// FindLines returns bill and payment entries matching the filter. The two
// tables are fetched separately and returned unordered; BuildStatement owns
// the chronological merge. A bill_number filter excludes payments.
func (r *GormEntryRepository) FindLines(ctx context.Context, tenantID uuid.UUID, filter ledger.LineFilter) ([]ledger.Line, error) {
	var bills []ledger.BillEntry
	if err := applyLineFilter(
		r.db.WithContext(ctx).Model(&ledger.BillEntry{}).Where("tenant_id = ?", tenantID),
		filter, true,
	).Find(&bills).Error; err != nil {
		return nil, err
	}

	lines := make([]ledger.Line, 0, len(bills))
	for i := range bills {
		lines = append(lines, &bills[i])
	}

	if filter.BillNumber != "" {
		return lines, nil
	}

	var payments []ledger.PaymentEntry
	if err := applyLineFilter(
		r.db.WithContext(ctx).Model(&ledger.PaymentEntry{}).Where("tenant_id = ?", tenantID),
		filter, false,
	).Find(&payments).Error; err != nil {
		return nil, err
	}
	for i := range payments {
		lines = append(lines, &payments[i])
	}

	return lines, nil
}

func (r *GormEntryRepository) FindBillByID(ctx context.Context, tenantID, id uuid.UUID) (*ledger.BillEntry, error) {
	var e ledger.BillEntry
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *GormEntryRepository) FindPaymentByID(ctx context.Context, tenantID, id uuid.UUID) (*ledger.PaymentEntry, error) {
	var e ledger.PaymentEntry
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *GormEntryRepository) CreateBill(ctx context.Context, e *ledger.BillEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// CreatePaymentWithBalanceGuard inserts the payment only if it does not
// exceed the customer's remaining balance. The customer row is locked and
// the balance re-read inside the same transaction, closing the read-then-
// write race between the service-level check and the insert.
func (r *GormEntryRepository) CreatePaymentWithBalanceGuard(ctx context.Context, e *ledger.PaymentEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer ledger.Customer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("tenant_id = ? AND id = ?", e.TenantID, e.CustomerID).
			First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		var totalDebit, totalCredit decimal.Decimal
		if err := tx.Model(&ledger.BillEntry{}).
			Where("tenant_id = ? AND customer_id = ?", e.TenantID, e.CustomerID).
			Select("COALESCE(SUM(debit), 0)").
			Scan(&totalDebit).Error; err != nil {
			return err
		}
		if err := tx.Model(&ledger.PaymentEntry{}).
			Where("tenant_id = ? AND customer_id = ?", e.TenantID, e.CustomerID).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&totalCredit).Error; err != nil {
			return err
		}

		if err := ledger.ValidatePaymentAmount(e.Amount, totalDebit.Sub(totalCredit)); err != nil {
			return err
		}

		return tx.Create(e).Error
	})
}

func (r *GormEntryRepository) HasPaymentOnOrAfter(ctx context.Context, tenantID, customerID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ledger.PaymentEntry{}).
		Where("tenant_id = ? AND customer_id = ? AND entry_date >= ?", tenantID, customerID, date).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormEntryRepository) DeleteBill(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&ledger.BillEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormEntryRepository) DeletePayment(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&ledger.PaymentEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
