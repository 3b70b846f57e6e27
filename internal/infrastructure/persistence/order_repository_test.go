package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a gorm.DB backed by a mocked SQL connection
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func newMockOrderRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormOrderRepository(gormDB), mock, mockDB
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("finds existing order", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()
		tenantID := uuid.New()
		sellerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "seller_id", "seller_reference", "seller_price", "delivery_charge", "profit", "status"}).
			AddRow(orderID, tenantID, sellerID, 7, decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.NewFromInt(250), "pending")

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnRows(rows)

		o, err := repo.FindByID(context.Background(), orderID)

		assert.NoError(t, err)
		assert.NotNil(t, o)
		assert.Equal(t, orderID, o.ID)
		assert.Equal(t, int64(7), o.SellerReference)
		assert.Equal(t, order.StatusPending, o.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for non-existent order", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		o, err := repo.FindByID(context.Background(), orderID)

		assert.Nil(t, o)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_FindInvoiceEligible(t *testing.T) {
	t.Run("filters by status and invoice linkage", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		sellerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "tenant_id", "seller_id", "seller_reference", "status"}).
			AddRow(uuid.New(), tenantID, sellerID, 1, "delivered").
			AddRow(uuid.New(), tenantID, sellerID, 2, "returned")

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE tenant_id = \$1 AND seller_id = \$2 AND status IN \(\$3,\$4\) AND invoice_id IS NULL ORDER BY seller_reference ASC`).
			WithArgs(tenantID, sellerID, "delivered", "returned").
			WillReturnRows(rows)

		orders, err := repo.FindInvoiceEligible(context.Background(), tenantID, sellerID)

		assert.NoError(t, err)
		assert.Len(t, orders, 2)
		assert.Equal(t, int64(1), orders[0].SellerReference)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_NextSellerReference(t *testing.T) {
	t.Run("returns max plus one", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		sellerID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(MAX\(seller_reference\), 0\) FROM "orders" WHERE tenant_id = \$1 AND seller_id = \$2`).
			WithArgs(tenantID, sellerID).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(41))

		ref, err := repo.NextSellerReference(context.Background(), tenantID, sellerID)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), ref)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("starts at one for a new seller", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		sellerID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(MAX\(seller_reference\), 0\) FROM "orders"`).
			WithArgs(tenantID, sellerID).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

		ref, err := repo.NextSellerReference(context.Background(), tenantID, sellerID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), ref)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_AttachInvoice(t *testing.T) {
	t.Run("attaches all unlinked orders", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		invoiceID := uuid.New()
		orderIDs := []uuid.UUID{uuid.New(), uuid.New()}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "orders" SET .* WHERE tenant_id = \$\d+ AND id IN \(.*\) AND invoice_id IS NULL`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := repo.AttachInvoice(context.Background(), tenantID, invoiceID, orderIDs)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fails when any order is already linked", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		invoiceID := uuid.New()
		orderIDs := []uuid.UUID{uuid.New(), uuid.New()}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "orders" SET .* AND invoice_id IS NULL`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		err := repo.AttachInvoice(context.Background(), tenantID, invoiceID, orderIDs)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_INVOICED", domainErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no-op for empty order list", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		err := repo.AttachInvoice(context.Background(), uuid.New(), uuid.New(), nil)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
