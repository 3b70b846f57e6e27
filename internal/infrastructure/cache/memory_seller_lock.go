package cache

import (
	"context"
	"sync"

	appinvoice "github.com/Khanjii4421/adnansoftware-sub000/internal/application/invoice"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// InMemorySellerLocker implements the per-seller invoice generation lock in
// process memory. Suitable for single-instance deployments and testing.
// WARNING: in-memory locks do not span process instances; a distributed
// deployment needs the Redis locker.
type InMemorySellerLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

var _ appinvoice.SellerLocker = (*InMemorySellerLocker)(nil)

// NewInMemorySellerLocker creates an in-memory seller locker
func NewInMemorySellerLocker() *InMemorySellerLocker {
	return &InMemorySellerLocker{held: make(map[string]struct{})}
}

// Lock acquires the seller's generation lock. The release function is
// idempotent.
func (l *InMemorySellerLocker) Lock(ctx context.Context, tenantID, sellerID uuid.UUID) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := tenantID.String() + ":" + sellerID.String()

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return nil, shared.ErrConcurrencyConflict
	}
	l.held[key] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.held, key)
		})
	}
	return release, nil
}
