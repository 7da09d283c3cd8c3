package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	migrationerrors "github.com/Ramsey-B/clover/pkg/errors"
)

var (
	ErrLockNotAcquired = errors.New("lock not acquired")
	ErrLockNotHeld     = errors.New("lock not held")
)

// releaseScript deletes the key only when it still holds our token.
var releaseScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`)

type Lock struct {
	client *Client
	key    string
	value  string
}

type Locker struct {
	client    *Client
	keyPrefix string
}

func NewLocker(client *Client, keyPrefix string) *Locker {
	if keyPrefix == "" {
		keyPrefix = "lock:"
	}
	return &Locker{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Acquire takes key with SET NX. It does not wait for a holder to let go.
func (l *Locker) Acquire(ctx context.Context, key string, ttl time.Duration) (*Lock, error) {
	lockKey := l.keyPrefix + key
	lockValue := uuid.New().String()

	ok, err := l.client.rdb.SetNX(ctx, lockKey, lockValue, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLockNotAcquired
	}

	l.client.logger.WithContext(ctx).Debugf("Acquired lock: %s", lockKey)

	return &Lock{
		client: l.client,
		key:    lockKey,
		value:  lockValue,
	}, nil
}

func (lock *Lock) Release(ctx context.Context) error {
	result, err := releaseScript.Run(ctx, lock.client.rdb, []string{lock.key}, lock.value).Int64()
	if err != nil {
		return err
	}
	if result == 0 {
		return ErrLockNotHeld
	}

	lock.client.logger.WithContext(ctx).Debugf("Released lock: %s", lock.key)
	return nil
}

// ProjectLocker keeps two runs of the same legacy project from overlapping.
type ProjectLocker struct {
	locker *Locker
	ttl    time.Duration
}

func NewProjectLocker(locker *Locker, ttl time.Duration) *ProjectLocker {
	return &ProjectLocker{
		locker: locker,
		ttl:    ttl,
	}
}

func ProjectLockKey(legacyProjectID int) string {
	return fmt.Sprintf("migration:project:%d", legacyProjectID)
}

// LockProject returns an error wrapping errors.ErrProjectLocked when another
// run holds the project. Any other error means redis could not be asked.
func (p *ProjectLocker) LockProject(ctx context.Context, legacyProjectID int) (func(context.Context) error, error) {
	key := ProjectLockKey(legacyProjectID)
	lock, err := p.locker.Acquire(ctx, key, p.ttl)
	if err != nil {
		return nil, projectLockError(key, err)
	}
	return lock.Release, nil
}

func projectLockError(key string, err error) error {
	if errors.Is(err, ErrLockNotAcquired) {
		return fmt.Errorf("%s: %w: %w", key, migrationerrors.ErrProjectLocked, err)
	}
	return fmt.Errorf("%s: %w", key, err)
}
