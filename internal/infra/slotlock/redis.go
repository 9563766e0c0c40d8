package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript удаляет ключ, только если он все еще принадлежит владельцу токена
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

const releaseTimeout = 2 * time.Second

// RedisOptions параметры распределенной блокировки
type RedisOptions struct {
	Prefix        string        // Префикс ключей, например "barber:lock:"
	TTL           time.Duration // Время жизни блокировки, если владелец упал
	RetryInterval time.Duration // Пауза между попытками SET NX
	WaitTimeout   time.Duration // Сколько ждать освобождения ключа
}

// RedisLocker блокировка через SET NX PX, общая для всех экземпляров сервиса
type RedisLocker struct {
	client redis.Cmdable
	opts   RedisOptions
	logger Logger
}

// NewRedisLocker создает распределенную блокировку
func NewRedisLocker(client redis.Cmdable, opts RedisOptions, logger Logger) *RedisLocker {
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Second
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = 50 * time.Millisecond
	}
	if opts.WaitTimeout <= 0 {
		opts.WaitTimeout = 10 * time.Second
	}
	return &RedisLocker{client: client, opts: opts, logger: logger}
}

// Lock пытается занять ключ, пока не истечет WaitTimeout или контекст
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	fullKey := l.opts.Prefix + key
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.opts.WaitTimeout)
	defer cancel()

	ticker := time.NewTicker(l.opts.RetryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(waitCtx, fullKey, token, l.opts.TTL).Result()
		if err != nil {
			if waitCtx.Err() != nil {
				return nil, fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, fullKey, waitCtx.Err())
			}
			return nil, fmt.Errorf("%w: SetNX key=%s: %v", ErrLockBackend, fullKey, err)
		}
		if ok {
			return l.unlockFunc(fullKey, token), nil
		}

		select {
		case <-ticker.C:
		case <-waitCtx.Done():
			return nil, fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, fullKey, waitCtx.Err())
		}
	}
}

func (l *RedisLocker) unlockFunc(key, token string) func() {
	released := false
	return func() {
		if released {
			return
		}
		released = true

		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()

		deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
		if err != nil {
			l.logger.Error("RedisLocker: failed to release key=%s: %v", key, err)
			return
		}
		if deleted == 0 {
			l.logger.Warn("RedisLocker: key=%s expired before release", key)
		}
	}
}
