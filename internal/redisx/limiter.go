package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/c4flow/studio-service/internal/errx"
)

// Limiter is a fixed-window counter per key.
type Limiter struct {
	rdb    redis.Cmdable
	limit  int64
	window time.Duration
}

func NewLimiter(rdb redis.Cmdable, limit int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, limit: int64(limit), window: window}
}

// Allow counts one hit for key and reports whether it is within the limit.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	k := fmt.Sprintf(KeyContactRate, key)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, errx.WrapRedis(err)
	}
	return incr.Val() <= l.limit, nil
}
