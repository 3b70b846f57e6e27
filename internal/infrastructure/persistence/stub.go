package persistence

import (
	"context"
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/invoice"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/ledger"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/partner"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Stub repositories fail every call with shared.ErrStoreNotConfigured. They
// stand in for optional stores when the deployment does not configure a
// database, so a miswired route fails loudly instead of with a nil panic.

// StubOrderRepository is a fail-fast order.Repository
type StubOrderRepository struct{}

var _ order.Repository = (*StubOrderRepository)(nil)

func (StubOrderRepository) FindByID(context.Context, uuid.UUID) (*order.Order, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubOrderRepository) FindByIDForTenant(context.Context, uuid.UUID, uuid.UUID) (*order.Order, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubOrderRepository) FindBySellerReference(context.Context, uuid.UUID, uuid.UUID, int64) (*order.Order, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubOrderRepository) FindAllForTenant(context.Context, uuid.UUID, shared.Filter) ([]order.Order, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubOrderRepository) FindInvoiceEligible(context.Context, uuid.UUID, uuid.UUID) ([]order.Order, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubOrderRepository) FindByInvoice(context.Context, uuid.UUID, uuid.UUID) ([]order.Order, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubOrderRepository) Save(context.Context, *order.Order) error {
	return shared.ErrStoreNotConfigured
}

func (StubOrderRepository) SaveWithLock(context.Context, *order.Order) error {
	return shared.ErrStoreNotConfigured
}

func (StubOrderRepository) AttachInvoice(context.Context, uuid.UUID, uuid.UUID, []uuid.UUID) error {
	return shared.ErrStoreNotConfigured
}

func (StubOrderRepository) DetachInvoice(context.Context, uuid.UUID, uuid.UUID) error {
	return shared.ErrStoreNotConfigured
}

func (StubOrderRepository) DeleteForTenant(context.Context, uuid.UUID, uuid.UUID) error {
	return shared.ErrStoreNotConfigured
}

func (StubOrderRepository) CountForTenant(context.Context, uuid.UUID, shared.Filter) (int64, error) {
	return 0, shared.ErrStoreNotConfigured
}

func (StubOrderRepository) CountByStatus(context.Context, uuid.UUID, order.Status) (int64, error) {
	return 0, shared.ErrStoreNotConfigured
}

func (StubOrderRepository) NextSellerReference(context.Context, uuid.UUID, uuid.UUID) (int64, error) {
	return 0, shared.ErrStoreNotConfigured
}

// StubInvoiceRepository is a fail-fast invoice.Repository
type StubInvoiceRepository struct{}

var _ invoice.Repository = (*StubInvoiceRepository)(nil)

func (StubInvoiceRepository) FindByID(context.Context, uuid.UUID) (*invoice.Invoice, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubInvoiceRepository) FindByIDForTenant(context.Context, uuid.UUID, uuid.UUID) (*invoice.Invoice, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubInvoiceRepository) FindByBillNumber(context.Context, uuid.UUID, string) (*invoice.Invoice, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubInvoiceRepository) FindAllForTenant(context.Context, uuid.UUID, shared.Filter) ([]invoice.Invoice, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubInvoiceRepository) Save(context.Context, *invoice.Invoice) error {
	return shared.ErrStoreNotConfigured
}

func (StubInvoiceRepository) SaveWithLock(context.Context, *invoice.Invoice) error {
	return shared.ErrStoreNotConfigured
}

func (StubInvoiceRepository) DeleteForTenant(context.Context, uuid.UUID, uuid.UUID) error {
	return shared.ErrStoreNotConfigured
}

func (StubInvoiceRepository) CountForTenant(context.Context, uuid.UUID, shared.Filter) (int64, error) {
	return 0, shared.ErrStoreNotConfigured
}

func (StubInvoiceRepository) ExistsByBillNumber(context.Context, uuid.UUID, string) (bool, error) {
	return false, shared.ErrStoreNotConfigured
}

func (StubInvoiceRepository) LastBillNumber(context.Context, uuid.UUID, uuid.UUID) (string, error) {
	return "", shared.ErrStoreNotConfigured
}

// StubCustomerRepository is a fail-fast ledger.CustomerRepository
type StubCustomerRepository struct{}

var _ ledger.CustomerRepository = (*StubCustomerRepository)(nil)

func (StubCustomerRepository) FindByID(context.Context, uuid.UUID) (*ledger.Customer, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubCustomerRepository) FindByIDForTenant(context.Context, uuid.UUID, uuid.UUID) (*ledger.Customer, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubCustomerRepository) FindAllForTenant(context.Context, uuid.UUID, shared.Filter) ([]ledger.Customer, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubCustomerRepository) Save(context.Context, *ledger.Customer) error {
	return shared.ErrStoreNotConfigured
}

func (StubCustomerRepository) SaveWithLock(context.Context, *ledger.Customer) error {
	return shared.ErrStoreNotConfigured
}

func (StubCustomerRepository) DeleteForTenant(context.Context, uuid.UUID, uuid.UUID) error {
	return shared.ErrStoreNotConfigured
}

func (StubCustomerRepository) CountForTenant(context.Context, uuid.UUID, shared.Filter) (int64, error) {
	return 0, shared.ErrStoreNotConfigured
}

// StubEntryRepository is a fail-fast ledger.EntryRepository
type StubEntryRepository struct{}

var _ ledger.EntryRepository = (*StubEntryRepository)(nil)

func (StubEntryRepository) FindLines(context.Context, uuid.UUID, ledger.LineFilter) ([]ledger.Line, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubEntryRepository) FindBillByID(context.Context, uuid.UUID, uuid.UUID) (*ledger.BillEntry, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubEntryRepository) FindPaymentByID(context.Context, uuid.UUID, uuid.UUID) (*ledger.PaymentEntry, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubEntryRepository) CreateBill(context.Context, *ledger.BillEntry) error {
	return shared.ErrStoreNotConfigured
}

func (StubEntryRepository) CreatePaymentWithBalanceGuard(context.Context, *ledger.PaymentEntry) error {
	return shared.ErrStoreNotConfigured
}

func (StubEntryRepository) HasPaymentOnOrAfter(context.Context, uuid.UUID, uuid.UUID, time.Time) (bool, error) {
	return false, shared.ErrStoreNotConfigured
}

func (StubEntryRepository) DeleteBill(context.Context, uuid.UUID, uuid.UUID) error {
	return shared.ErrStoreNotConfigured
}

func (StubEntryRepository) DeletePayment(context.Context, uuid.UUID, uuid.UUID) error {
	return shared.ErrStoreNotConfigured
}

// StubSellerRepository is a fail-fast partner.Repository
type StubSellerRepository struct{}

var _ partner.Repository = (*StubSellerRepository)(nil)

func (StubSellerRepository) FindByID(context.Context, uuid.UUID) (*partner.Seller, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubSellerRepository) FindByIDForTenant(context.Context, uuid.UUID, uuid.UUID) (*partner.Seller, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubSellerRepository) FindAllForTenant(context.Context, uuid.UUID, shared.Filter) ([]partner.Seller, error) {
	return nil, shared.ErrStoreNotConfigured
}

func (StubSellerRepository) Save(context.Context, *partner.Seller) error {
	return shared.ErrStoreNotConfigured
}

func (StubSellerRepository) SaveWithLock(context.Context, *partner.Seller) error {
	return shared.ErrStoreNotConfigured
}

func (StubSellerRepository) DeleteForTenant(context.Context, uuid.UUID, uuid.UUID) error {
	return shared.ErrStoreNotConfigured
}

func (StubSellerRepository) CountForTenant(context.Context, uuid.UUID, shared.Filter) (int64, error) {
	return 0, shared.ErrStoreNotConfigured
}
