package identity

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wellnesslane/session-scheduler/internal/logger"
)

// CachedVerifier fronts a Verifier with a Redis existence cache so repeated
// booking attempts against the same vendor do not hammer the identity
// service. Only positive answers are cached: a party that exists stays
// existing for the TTL, while "not found" and outages always go back to the
// source. A nil Redis client degrades to pass-through.
type CachedVerifier struct {
	next Verifier
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedVerifier(next Verifier, rdb *redis.Client, ttl time.Duration) *CachedVerifier {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedVerifier{next: next, rdb: rdb, ttl: ttl}
}

func (v *CachedVerifier) VendorExists(ctx context.Context, vendorID uuid.UUID) (bool, error) {
	return v.exists(ctx, "identity:vendor:"+vendorID.String(), func() (bool, error) {
		return v.next.VendorExists(ctx, vendorID)
	})
}

func (v *CachedVerifier) ClientExists(ctx context.Context, clientID uuid.UUID) (bool, error) {
	return v.exists(ctx, "identity:client:"+clientID.String(), func() (bool, error) {
		return v.next.ClientExists(ctx, clientID)
	})
}

func (v *CachedVerifier) exists(ctx context.Context, key string, fetch func() (bool, error)) (bool, error) {
	if v.rdb != nil {
		if val, err := v.rdb.Get(ctx, key).Result(); err == nil && val == "1" {
			return true, nil
		}
	}

	ok, err := fetch()
	if err != nil {
		return false, err
	}

	if ok && v.rdb != nil {
		if err := v.rdb.Set(ctx, key, "1", v.ttl).Err(); err != nil {
			logger.L().Warn("identity cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return ok, nil
}

var _ Verifier = (*CachedVerifier)(nil)

// NewRedisClient connects to Redis for the identity cache. Connection
// failure is not fatal: callers get nil and the verifier runs uncached.
func NewRedisClient(addr, password string, dbNum int) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.L().Warn("redis unreachable, identity cache disabled", zap.String("addr", addr), zap.Error(err))
		_ = rdb.Close()
		return nil
	}

	return rdb
}
