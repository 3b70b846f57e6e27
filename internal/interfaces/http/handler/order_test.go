package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	orderapp "github.com/Khanjii4421/adnansoftware-sub000/internal/application/order"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindBySellerReference(ctx context.Context, tenantID, sellerID uuid.UUID, sellerReference int64) (*order.Order, error) {
	args := m.Called(ctx, tenantID, sellerID, sellerReference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindInvoiceEligible(ctx context.Context, tenantID, sellerID uuid.UUID) ([]order.Order, error) {
	args := m.Called(ctx, tenantID, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) ([]order.Order, error) {
	args := m.Called(ctx, tenantID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveWithLock(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) AttachInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID, orderIDs []uuid.UUID) error {
	args := m.Called(ctx, tenantID, invoiceID, orderIDs)
	return args.Error(0)
}

func (m *MockOrderRepository) DetachInvoice(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	args := m.Called(ctx, tenantID, invoiceID)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockOrderRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, tenantID uuid.UUID, status order.Status) (int64, error) {
	args := m.Called(ctx, tenantID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) NextSellerReference(ctx context.Context, tenantID, sellerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, sellerID)
	return args.Get(0).(int64), args.Error(1)
}

func newOrderTestServer(repo *MockOrderRepository, tenantID uuid.UUID) *gin.Engine {
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		setJWTContext(c, tenantID)
	})
	api := engine.Group("/api/v1")
	NewOrderHandler(orderapp.NewService(repo)).RegisterRoutes(api)
	return engine
}

func TestOrderHandlerCreate(t *testing.T) {
	repo := new(MockOrderRepository)
	tenantID := uuid.New()
	sellerID := uuid.New()
	engine := newOrderTestServer(repo, tenantID)

	repo.On("NextSellerReference", mock.Anything, tenantID, sellerID).Return(int64(5), nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)

	body, _ := json.Marshal(gin.H{
		"seller_id":       sellerID,
		"product_codes":   "A1,A1,B2",
		"seller_price":    "1200",
		"shipper_price":   "200",
		"delivery_charge": "100",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodeResponse(t, w)
	require.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var got orderapp.OrderResponse
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, int64(5), got.SellerReference)
	assert.Equal(t, "pending", got.Status)
	assert.True(t, got.Profit.Equal(decimal.NewFromInt(900)))
	repo.AssertExpectations(t)
}

func TestOrderHandlerCreateValidation(t *testing.T) {
	repo := new(MockOrderRepository)
	engine := newOrderTestServer(repo, uuid.New())

	// missing seller_id and prices
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/orders", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOrderHandlerGetNotFound(t *testing.T) {
	repo := new(MockOrderRepository)
	tenantID := uuid.New()
	engine := newOrderTestServer(repo, tenantID)

	orderID := uuid.New()
	repo.On("FindByIDForTenant", mock.Anything, tenantID, orderID).Return(nil, shared.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/orders/"+orderID.String(), nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandlerDeliver(t *testing.T) {
	repo := new(MockOrderRepository)
	tenantID := uuid.New()
	engine := newOrderTestServer(repo, tenantID)

	shipper := decimal.NewFromInt(300)
	o, err := order.NewOrder(tenantID, uuid.New(), 7, "C3",
		decimal.NewFromInt(1500), &shipper, decimal.NewFromInt(150))
	require.NoError(t, err)
	require.NoError(t, o.Confirm())

	repo.On("FindByIDForTenant", mock.Anything, tenantID, o.ID).Return(o, nil)
	repo.On("SaveWithLock", mock.Anything, o).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/orders/"+o.ID.String()+"/deliver", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeResponse(t, w)
	data, _ := json.Marshal(resp.Data)
	var got orderapp.OrderResponse
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "delivered", got.Status)
	repo.AssertExpectations(t)
}

func TestOrderHandlerSummary(t *testing.T) {
	repo := new(MockOrderRepository)
	tenantID := uuid.New()
	engine := newOrderTestServer(repo, tenantID)

	repo.On("CountByStatus", mock.Anything, tenantID, order.StatusPending).Return(int64(2), nil)
	repo.On("CountByStatus", mock.Anything, tenantID, order.StatusConfirmed).Return(int64(3), nil)
	repo.On("CountByStatus", mock.Anything, tenantID, order.StatusDelivered).Return(int64(10), nil)
	repo.On("CountByStatus", mock.Anything, tenantID, order.StatusReturned).Return(int64(1), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/orders/summary", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data, _ := json.Marshal(resp.Data)
	var got orderapp.StatusSummaryResponse
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, int64(16), got.Total)
	assert.Equal(t, int64(10), got.Delivered)
}
