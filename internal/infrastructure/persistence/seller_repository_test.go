package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/partner"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SellerModelSQLite is a SQLite-compatible version of the sellers table for testing
type SellerModelSQLite struct {
	ID        string `gorm:"primaryKey"`
	TenantID  string `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	Phone     string
	Email     string `gorm:"index"`
	Address   string
	IsActive  bool `gorm:"not null;default:true"`
	Version   int  `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SellerModelSQLite) TableName() string {
	return "sellers"
}

func setupSellerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&SellerModelSQLite{})
	require.NoError(t, err)

	return db
}

func mustNewSeller(t *testing.T, tenantID uuid.UUID, name, phone, email string) *partner.Seller {
	t.Helper()
	s, err := partner.NewSeller(tenantID, name, phone, email, "")
	require.NoError(t, err)
	return s
}

func TestGormSellerRepository_SaveAndFind(t *testing.T) {
	db := setupSellerTestDB(t)
	repo := NewGormSellerRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	seller := mustNewSeller(t, tenantID, "Ahmed Traders", "0300-1234567", "ahmed@example.com")
	require.NoError(t, repo.Save(ctx, seller))

	t.Run("finds by id within tenant", func(t *testing.T) {
		found, err := repo.FindByIDForTenant(ctx, tenantID, seller.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ahmed Traders", found.Name)
		assert.True(t, found.IsActive)
	})

	t.Run("tenant scoping hides other tenants", func(t *testing.T) {
		_, err := repo.FindByIDForTenant(ctx, uuid.New(), seller.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormSellerRepository_SaveWithLock(t *testing.T) {
	db := setupSellerTestDB(t)
	repo := NewGormSellerRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	seller := mustNewSeller(t, tenantID, "Bilal Store", "", "")
	require.NoError(t, repo.Save(ctx, seller))

	t.Run("matching version updates and increments", func(t *testing.T) {
		require.NoError(t, seller.Update("Bilal Store & Co", "0321-7654321", "", ""))
		require.NoError(t, repo.SaveWithLock(ctx, seller))
		assert.Equal(t, 2, seller.Version)

		found, err := repo.FindByIDForTenant(ctx, tenantID, seller.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bilal Store & Co", found.Name)
		assert.Equal(t, 2, found.Version)
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		stale := *seller
		stale.Version = 1

		err := repo.SaveWithLock(ctx, &stale)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONCURRENT_MODIFICATION", domainErr.Code)
	})
}

func TestGormSellerRepository_ListAndCount(t *testing.T) {
	db := setupSellerTestDB(t)
	repo := NewGormSellerRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	for _, name := range []string{"Zain Traders", "Ali Garments", "Mariam Fabrics"} {
		require.NoError(t, repo.Save(ctx, mustNewSeller(t, tenantID, name, "", "")))
	}
	inactive := mustNewSeller(t, tenantID, "Closed Shop", "", "")
	inactive.Deactivate()
	require.NoError(t, repo.Save(ctx, inactive))
	require.NoError(t, repo.Save(ctx, mustNewSeller(t, uuid.New(), "Other Tenant", "", "")))

	t.Run("lists tenant sellers ordered by name", func(t *testing.T) {
		sellers, err := repo.FindAllForTenant(ctx, tenantID, shared.Filter{})
		require.NoError(t, err)
		require.Len(t, sellers, 4)
		assert.Equal(t, "Ali Garments", sellers[0].Name)
		assert.Equal(t, "Zain Traders", sellers[3].Name)
	})

	t.Run("paginates", func(t *testing.T) {
		sellers, err := repo.FindAllForTenant(ctx, tenantID, shared.Filter{Page: 2, PageSize: 3})
		require.NoError(t, err)
		require.Len(t, sellers, 1)
	})

	t.Run("counts active sellers", func(t *testing.T) {
		count, err := repo.CountForTenant(ctx, tenantID, shared.Filter{
			Filters: map[string]interface{}{"is_active": true},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestGormSellerRepository_DeleteForTenant(t *testing.T) {
	db := setupSellerTestDB(t)
	repo := NewGormSellerRepository(db)
	ctx := context.Background()

	tenantID := uuid.New()
	seller := mustNewSeller(t, tenantID, "Short Lived", "", "")
	require.NoError(t, repo.Save(ctx, seller))

	require.NoError(t, repo.DeleteForTenant(ctx, tenantID, seller.ID))

	err := repo.DeleteForTenant(ctx, tenantID, seller.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
