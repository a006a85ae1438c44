package keylock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only if this holder still owns it.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

// Redis is a Locker shared by every API instance. Each hold expires after
// ttl so a crashed holder cannot block a schedule forever.
type Redis struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration

	newToken func() string
}

func NewRedis(rdb redis.Cmdable, ttl, wait time.Duration) *Redis {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &Redis{
		rdb:      rdb,
		prefix:   "salon:lock:",
		ttl:      ttl,
		wait:     wait,
		retry:    25 * time.Millisecond,
		newToken: uuid.NewString,
	}
}

func (l *Redis) Lock(ctx context.Context, key string) (func(), error) {
	k := l.prefix + key
	token := l.newToken()

	if l.wait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.wait)
		defer cancel()
	}

	for {
		ok, err := l.rdb.SetNX(ctx, k, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				return nil, ErrTimeout
			}
			return nil, err
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return nil, ErrTimeout
			}
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// The caller's context may already be done; release regardless.
			if err := l.rdb.Eval(context.Background(), releaseScript, []string{k}, token).Err(); err != nil {
				slog.Warn("keylock release failed", "key", k, "err", err)
			}
		})
	}, nil
}

var _ Locker = (*Redis)(nil)
