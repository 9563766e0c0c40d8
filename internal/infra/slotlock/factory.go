package slotlock

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	DriverNone   = "none"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// New создает Locker по имени драйвера
// client используется только для драйвера redis
func New(driver string, client redis.Cmdable, opts RedisOptions, logger Logger) (Locker, error) {
	switch driver {
	case DriverNone, "":
		return NoopLocker{}, nil
	case DriverMemory:
		return NewMemoryLocker(), nil
	case DriverRedis:
		if client == nil {
			return nil, fmt.Errorf("%w: redis driver requires a client", ErrLockBackend)
		}
		return NewRedisLocker(client, opts, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
