package partner

import (
	"context"
	"testing"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/partner"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSellerRepository is a mock implementation of partner.Repository
type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Seller), args.Error(1)
}

func (m *MockSellerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Seller, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Seller), args.Error(1)
}

func (m *MockSellerRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Seller, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Seller), args.Error(1)
}

func (m *MockSellerRepository) Save(ctx context.Context, s *partner.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSellerRepository) SaveWithLock(ctx context.Context, s *partner.Seller) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSellerRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockSellerRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderRepository is a partial mock of order.Repository; only the
// methods the seller service touches carry expectations.
type MockOrderRepository struct {
	mock.Mock
	order.Repository
}

func (m *MockOrderRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) NextSellerReference(ctx context.Context, tenantID, sellerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, sellerID)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Create(t *testing.T) {
	tenantID := uuid.New()
	sellerRepo := new(MockSellerRepository)
	orderRepo := new(MockOrderRepository)
	svc := NewService(sellerRepo, orderRepo)

	sellerRepo.On("Save", mock.Anything, mock.AnythingOfType("*partner.Seller")).Return(nil)

	resp, err := svc.Create(context.Background(), tenantID, CreateSellerRequest{
		Name:  "Khan Traders",
		Email: "Khan@Example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "khan@example.com", resp.Email)
	assert.True(t, resp.IsActive)
}

func TestService_Delete(t *testing.T) {
	tenantID := uuid.New()

	t.Run("seller without orders is deleted", func(t *testing.T) {
		sellerRepo := new(MockSellerRepository)
		orderRepo := new(MockOrderRepository)
		svc := NewService(sellerRepo, orderRepo)

		seller, err := partner.NewSeller(tenantID, "Khan Traders", "", "", "")
		require.NoError(t, err)

		sellerRepo.On("FindByIDForTenant", mock.Anything, tenantID, seller.ID).Return(seller, nil)
		orderRepo.On("CountForTenant", mock.Anything, tenantID, mock.Anything).Return(int64(0), nil)
		sellerRepo.On("DeleteForTenant", mock.Anything, tenantID, seller.ID).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), tenantID, seller.ID))
		sellerRepo.AssertExpectations(t)
	})

	t.Run("seller with orders is protected", func(t *testing.T) {
		sellerRepo := new(MockSellerRepository)
		orderRepo := new(MockOrderRepository)
		svc := NewService(sellerRepo, orderRepo)

		seller, err := partner.NewSeller(tenantID, "Khan Traders", "", "", "")
		require.NoError(t, err)

		sellerRepo.On("FindByIDForTenant", mock.Anything, tenantID, seller.ID).Return(seller, nil)
		orderRepo.On("CountForTenant", mock.Anything, tenantID, mock.Anything).Return(int64(12), nil)

		err = svc.Delete(context.Background(), tenantID, seller.ID)
		require.Error(t, err)
		sellerRepo.AssertNotCalled(t, "DeleteForTenant", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_LastReference(t *testing.T) {
	tenantID := uuid.New()
	sellerID := uuid.New()
	sellerRepo := new(MockSellerRepository)
	orderRepo := new(MockOrderRepository)
	svc := NewService(sellerRepo, orderRepo)

	orderRepo.On("NextSellerReference", mock.Anything, tenantID, sellerID).Return(int64(8), nil)

	last, err := svc.LastReference(context.Background(), tenantID, sellerID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), last)
}
