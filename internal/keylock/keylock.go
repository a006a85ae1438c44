// Package keylock serializes critical sections per string key, either
// inside one process or across processes through Redis.
package keylock

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrTimeout is returned when a key could not be acquired in time.
var ErrTimeout = errors.New("keylock: timed out waiting for lock")

type Locker interface {
	// Lock blocks until key is held, ctx ends, or the locker's wait limit
	// elapses. The returned release func is safe to call more than once.
	Lock(ctx context.Context, key string) (release func(), err error)
}

func ScheduleKey(professionalID uint, date string) string {
	return fmt.Sprintf("schedule:%d:%s", professionalID, date)
}

func ClientKey(clientID uint, date string) string {
	return fmt.Sprintf("client:%d:%s", clientID, date)
}

// LockAll acquires every distinct key in sorted order so two callers
// asking for overlapping sets can never deadlock.
func LockAll(ctx context.Context, l Locker, keys ...string) (func(), error) {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	var releases []func()
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	prev := ""
	for i, k := range sorted {
		if i > 0 && k == prev {
			continue
		}
		prev = k

		release, err := l.Lock(ctx, k)
		if err != nil {
			releaseAll()
			return nil, fmt.Errorf("lock %s: %w", k, err)
		}
		releases = append(releases, release)
	}

	return releaseAll, nil
}
