package redisx

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/c4flow/studio-service/internal/errx"
)

type Idempotency struct {
	rdb redis.Cmdable
}

func NewIdempotency(rdb redis.Cmdable) *Idempotency {
	return &Idempotency{rdb: rdb}
}

// Claim binds key to id. When key was already claimed it returns the id it
// was bound to and claimed=false.
func (i *Idempotency) Claim(ctx context.Context, key, id string) (existing string, claimed bool, err error) {
	k := fmt.Sprintf(KeyIdemContact, key)

	ok, err := i.rdb.SetNX(ctx, k, id, TTLIdempotency).Result()
	if err != nil {
		return "", false, errx.WrapRedis(err)
	}
	if ok {
		return id, true, nil
	}

	existing, err = i.rdb.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET
		return i.Claim(ctx, key, id)
	}
	if err != nil {
		return "", false, errx.WrapRedis(err)
	}
	return existing, false, nil
}

// Release drops a claim so the client can retry after a failed submission.
func (i *Idempotency) Release(ctx context.Context, key string) error {
	return errx.WrapRedis(i.rdb.Del(ctx, fmt.Sprintf(KeyIdemContact, key)).Err())
}
