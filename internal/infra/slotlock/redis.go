package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Lock curto por slot no Redis. Guarda de caminho rápido contra duas
// tentativas simultâneas de reserva; a palavra final é sempre do insert
// condicional no banco.
type RedisLock struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *RedisLock {
	return &RedisLock{client: client, ttl: ttl}
}

func key(courtID, date, startTime string) string {
	return fmt.Sprintf("slotlock:%s:%s:%s", courtID, date, startTime)
}

// Acquire tenta tomar o lock do slot. Devolve false se outro usuário
// já o segura dentro do TTL.
func (l *RedisLock) Acquire(
	ctx context.Context,
	courtID, date, startTime string,
) (bool, error) {
	return l.client.SetNX(ctx, key(courtID, date, startTime), 1, l.ttl).Result()
}

func (l *RedisLock) Release(
	ctx context.Context,
	courtID, date, startTime string,
) error {
	return l.client.Del(ctx, key(courtID, date, startTime)).Err()
}
