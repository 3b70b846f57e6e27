package cache

import (
	"fmt"
	"time"

	appinvoice "github.com/Khanjii4421/adnansoftware-sub000/internal/application/invoice"
	"github.com/Khanjii4421/adnansoftware-sub000/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SellerLockerFactory creates seller lockers based on configuration
type SellerLockerFactory struct {
	redisConfig           config.RedisConfig
	ttl                   time.Duration
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// SellerLockerFactoryOption is a functional option for configuring the factory
type SellerLockerFactoryOption func(*SellerLockerFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) SellerLockerFactoryOption {
	return func(f *SellerLockerFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory locker
// when Redis is not configured or unavailable. Default is true.
func WithInMemoryFallback(allow bool) SellerLockerFactoryOption {
	return func(f *SellerLockerFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewSellerLockerFactory creates a new factory
func NewSellerLockerFactory(cfg config.RedisConfig, ttl time.Duration, opts ...SellerLockerFactoryOption) *SellerLockerFactory {
	f := &SellerLockerFactory{
		redisConfig:           cfg,
		ttl:                   ttl,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateLocker creates a seller locker. Redis is preferred when a host is
// configured; otherwise, or on connection failure with fallback allowed,
// the in-memory locker is used.
func (f *SellerLockerFactory) CreateLocker() (appinvoice.SellerLocker, error) {
	if f.redisConfig.Host == "" {
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("redis host is not configured and in-memory fallback is disabled")
		}
		f.logger.Info("redis not configured, using in-memory invoice lock")
		return NewInMemorySellerLocker(), nil
	}

	locker, err := NewRedisSellerLocker(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}, f.ttl, f.logger)
	if err != nil {
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("failed to create Redis seller locker: %w", err)
		}
		f.logger.Warn("redis unavailable, falling back to in-memory invoice lock", zap.Error(err))
		return NewInMemorySellerLocker(), nil
	}

	f.logger.Info("using redis invoice lock",
		zap.String("addr", f.redisConfig.RedisAddr()),
		zap.Duration("ttl", f.ttl))
	return locker, nil
}
