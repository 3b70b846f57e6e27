package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func createTestOrder(t *testing.T) *Order {
	o, err := NewOrder(uuid.New(), uuid.New(), 1, "P-100,P-101", dec("1500"), decPtr("1100"), dec("150"))
	require.NoError(t, err)
	return o
}

// ============================================
// Status Tests
// ============================================

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  Status
		isValid bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusDelivered, true},
		{StatusReturned, true},
		{Status("shipped"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     Status
		to       Status
		canTrans bool
	}{
		// From pending
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusReturned, true},
		{StatusPending, StatusDelivered, false},
		// From confirmed
		{StatusConfirmed, StatusDelivered, true},
		{StatusConfirmed, StatusReturned, true},
		{StatusConfirmed, StatusPending, false},
		// From delivered (only courier return)
		{StatusDelivered, StatusReturned, true},
		{StatusDelivered, StatusPending, false},
		{StatusDelivered, StatusConfirmed, false},
		// From returned (terminal)
		{StatusReturned, StatusPending, false},
		{StatusReturned, StatusConfirmed, false},
		{StatusReturned, StatusDelivered, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.canTrans, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusReturned, NormalizeStatus("Return"))
	assert.Equal(t, StatusReturned, NormalizeStatus("RETURNED"))
	assert.Equal(t, StatusDelivered, NormalizeStatus(" Delivered "))
	assert.Equal(t, StatusPending, NormalizeStatus("pending"))
}

// ============================================
// Profit Tests
// ============================================

func TestComputeProfit(t *testing.T) {
	tests := []struct {
		name           string
		sellerPrice    string
		shipperPrice   *decimal.Decimal
		deliveryCharge string
		want           string
	}{
		{"with shipper price", "1500", decPtr("1100"), "150", "250"},
		{"shipper price unknown", "1500", nil, "150", "1350"},
		{"shipper price zero is not unknown", "1500", decPtr("0"), "150", "1350"},
		{"negative profit", "500", decPtr("600"), "150", "-250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeProfit(dec(tt.sellerPrice), tt.shipperPrice, dec(tt.deliveryCharge))
			assert.True(t, dec(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("computes and stores profit at creation", func(t *testing.T) {
		o := createTestOrder(t)
		assert.True(t, dec("250").Equal(o.Profit))
		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, int64(1), o.SellerReference)
	})

	t.Run("rejects missing delivery charge", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), uuid.New(), 1, "P-100", dec("1500"), nil, decimal.Zero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Delivery charge")
	})

	t.Run("rejects negative delivery charge", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), uuid.New(), 1, "P-100", dec("1500"), nil, dec("-10"))
		assert.Error(t, err)
	})

	t.Run("rejects empty seller", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), uuid.Nil, 1, "P-100", dec("1500"), nil, dec("150"))
		assert.Error(t, err)
	})

	t.Run("rejects non-positive seller reference", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), uuid.New(), 0, "P-100", dec("1500"), nil, dec("150"))
		assert.Error(t, err)
	})
}

func TestOrder_ProfitIsFrozen(t *testing.T) {
	o := createTestOrder(t)
	frozen := o.Profit

	// Unrelated edits must never rewrite the stored profit.
	o.SetProductCodes("P-999")
	o.SetTrackingID("TRK-1")
	o.MarkPaid()
	require.NoError(t, o.Confirm())
	require.NoError(t, o.Deliver())

	assert.True(t, frozen.Equal(o.Profit))
}

func TestOrder_DisplayProfit(t *testing.T) {
	t.Run("unknown shipper price yields nil, not zero", func(t *testing.T) {
		o, err := NewOrder(uuid.New(), uuid.New(), 1, "P-100", dec("1500"), nil, dec("150"))
		require.NoError(t, err)
		assert.Nil(t, o.DisplayProfit())
	})

	t.Run("known shipper price yields recomputed figure", func(t *testing.T) {
		o := createTestOrder(t)
		dp := o.DisplayProfit()
		require.NotNil(t, dp)
		assert.True(t, dec("250").Equal(*dp))
	})
}

// ============================================
// Invoice linkage tests
// ============================================

func TestOrder_AttachToInvoice(t *testing.T) {
	t.Run("pending order is not eligible", func(t *testing.T) {
		o := createTestOrder(t)
		err := o.AttachToInvoice(uuid.New())
		assert.Error(t, err)
	})

	t.Run("delivered order attaches once", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Deliver())

		invoiceID := uuid.New()
		require.NoError(t, o.AttachToInvoice(invoiceID))
		assert.True(t, o.IsInvoiced())

		err := o.AttachToInvoice(uuid.New())
		assert.Error(t, err, "double-billing the same order must be rejected")
	})

	t.Run("returned order is eligible", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.Return())
		assert.True(t, o.InvoiceEligible())
		assert.NoError(t, o.AttachToInvoice(uuid.New()))
	})

	t.Run("detach restores eligibility", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Deliver())
		require.NoError(t, o.AttachToInvoice(uuid.New()))

		o.DetachFromInvoice()
		assert.False(t, o.IsInvoiced())
		assert.True(t, o.InvoiceEligible())
	})
}

func TestOrder_CanDelete(t *testing.T) {
	o := createTestOrder(t)
	assert.True(t, o.CanDelete())

	require.NoError(t, o.Confirm())
	assert.False(t, o.CanDelete())
}
