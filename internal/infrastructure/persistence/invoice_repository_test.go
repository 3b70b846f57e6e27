package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newMockInvoiceRepository(t *testing.T) (*GormInvoiceRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormInvoiceRepository(gormDB), mock, mockDB
}

func TestGormInvoiceRepository_LastBillNumber(t *testing.T) {
	t.Run("orders numerically past the zero padding", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		sellerID := uuid.New()

		mock.ExpectQuery(`SELECT "bill_number" FROM "invoices" WHERE tenant_id = \$1 AND seller_id = \$2 AND bill_number LIKE \$3 ORDER BY LENGTH\(bill_number\) DESC, bill_number DESC LIMIT .*`).
			WithArgs(tenantID, sellerID, "INV-%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"bill_number"}).AddRow("INV-1000"))

		last, err := repo.LastBillNumber(context.Background(), tenantID, sellerID)

		assert.NoError(t, err)
		assert.Equal(t, "INV-1000", last)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty string when the seller has no invoices", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		sellerID := uuid.New()

		mock.ExpectQuery(`SELECT "bill_number" FROM "invoices"`).
			WithArgs(tenantID, sellerID, "INV-%", 1).
			WillReturnRows(sqlmock.NewRows([]string{"bill_number"}))

		last, err := repo.LastBillNumber(context.Background(), tenantID, sellerID)

		assert.NoError(t, err)
		assert.Equal(t, "", last)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInvoiceRepository_ExistsByBillNumber(t *testing.T) {
	t.Run("reports an existing bill number", func(t *testing.T) {
		repo, mock, mockDB := newMockInvoiceRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices" WHERE tenant_id = \$1 AND bill_number = \$2`).
			WithArgs(tenantID, "INV-007").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByBillNumber(context.Background(), tenantID, "INV-007")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
