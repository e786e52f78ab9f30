package cart

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// redisRepository menyimpan snapshot keranjang sebagai JSON per card code.
// Tanpa TTL: keranjang hidup sampai di-clear atau order berhasil.
type redisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) Repository {
	return &redisRepository{rdb: rdb}
}

func (r *redisRepository) Load(ctx context.Context, cardCode string) (State, error) {
	raw, err := r.rdb.Get(ctx, cartKeyPrefix+cardCode).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return State{}, nil
		}
		return State{}, ErrCartStoreFailed
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		// snapshot korup dianggap keranjang kosong
		return State{}, nil
	}
	return state, nil
}

func (r *redisRepository) Save(ctx context.Context, cardCode string, state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	if err := r.rdb.Set(ctx, cartKeyPrefix+cardCode, raw, 0).Err(); err != nil {
		return ErrCartStoreFailed
	}
	return nil
}

func (r *redisRepository) Clear(ctx context.Context, cardCode string) error {
	if err := r.rdb.Del(ctx, cartKeyPrefix+cardCode).Err(); err != nil {
		return ErrCartStoreFailed
	}
	return nil
}
