package cache

import (
	"context"
	"testing"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySellerLocker(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	sellerID := uuid.New()

	t.Run("second acquire of a held lock conflicts", func(t *testing.T) {
		locker := NewInMemorySellerLocker()

		release, err := locker.Lock(ctx, tenantID, sellerID)
		require.NoError(t, err)
		defer release()

		_, err = locker.Lock(ctx, tenantID, sellerID)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})

	t.Run("release makes the lock available again", func(t *testing.T) {
		locker := NewInMemorySellerLocker()

		release, err := locker.Lock(ctx, tenantID, sellerID)
		require.NoError(t, err)
		release()

		release2, err := locker.Lock(ctx, tenantID, sellerID)
		require.NoError(t, err)
		release2()
	})

	t.Run("release is idempotent", func(t *testing.T) {
		locker := NewInMemorySellerLocker()

		release, err := locker.Lock(ctx, tenantID, sellerID)
		require.NoError(t, err)
		release()

		// a second holder acquires, then the stale release runs again
		release2, err := locker.Lock(ctx, tenantID, sellerID)
		require.NoError(t, err)
		release()

		_, err = locker.Lock(ctx, tenantID, sellerID)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		release2()
	})

	t.Run("different sellers lock independently", func(t *testing.T) {
		locker := NewInMemorySellerLocker()

		release1, err := locker.Lock(ctx, tenantID, sellerID)
		require.NoError(t, err)
		defer release1()

		release2, err := locker.Lock(ctx, tenantID, uuid.New())
		require.NoError(t, err)
		defer release2()
	})

	t.Run("same seller in another tenant locks independently", func(t *testing.T) {
		locker := NewInMemorySellerLocker()

		release1, err := locker.Lock(ctx, tenantID, sellerID)
		require.NoError(t, err)
		defer release1()

		release2, err := locker.Lock(ctx, uuid.New(), sellerID)
		require.NoError(t, err)
		defer release2()
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		locker := NewInMemorySellerLocker()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := locker.Lock(cancelled, tenantID, sellerID)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
