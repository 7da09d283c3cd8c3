package redis

import (
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"

	migrationerrors "github.com/Ramsey-B/clover/pkg/errors"
)

func TestProjectLockKey(t *testing.T) {
	assert.Equal(t, "migration:project:4698", ProjectLockKey(4698))
}

func TestNewLocker_DefaultPrefix(t *testing.T) {
	client := NewClient(Config{Addr: "localhost:6379"}, ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}))
	defer client.Close()

	assert.Equal(t, "lock:", NewLocker(client, "").keyPrefix)
	assert.Equal(t, "clover:", NewLocker(client, "clover:").keyPrefix)
}

func TestProjectLockError(t *testing.T) {
	t.Run("held lock is reported as project locked", func(t *testing.T) {
		err := projectLockError("migration:project:4698", ErrLockNotAcquired)

		assert.True(t, migrationerrors.IsProjectLocked(err))
		assert.ErrorIs(t, err, ErrLockNotAcquired)
	})

	t.Run("connection failure is passed through", func(t *testing.T) {
		cause := errors.New("dial tcp 10.0.0.5:6379: connect: connection refused")
		err := projectLockError("migration:project:4698", cause)

		assert.False(t, migrationerrors.IsProjectLocked(err))
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection refused")
	})
}
