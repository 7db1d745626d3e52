package vault

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/app/mocks"
	"github.com/dan13ram/clpd-settlement/common"
	vaultMocks "github.com/dan13ram/clpd-settlement/vault/mocks"
	log "github.com/sirupsen/logrus"
	lock "github.com/square/mongo-lock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	log.SetOutput(io.Discard)
}

func testPolicy(timeout time.Duration) AcquirePolicy {
	return AcquirePolicy{
		Timeout:    timeout,
		RetryDelay: time.Millisecond,
		LockTTL:    time.Minute,
	}
}

func TestAcquireWithRetry(t *testing.T) {

	t.Run("Acquired After Retries", func(t *testing.T) {
		locker := vaultMocks.NewMockLocker(t)
		locker.EXPECT().TryAcquire(time.Minute).Return("", nil).Times(2)
		locker.EXPECT().TryAcquire(time.Minute).Return("token", nil).Once()

		token, err := AcquireWithRetry(context.Background(), locker, testPolicy(time.Second))

		assert.Nil(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Timeout Returns Empty Token", func(t *testing.T) {
		locker := vaultMocks.NewMockLocker(t)
		locker.EXPECT().TryAcquire(time.Minute).Return("", nil)

		start := time.Now()
		token, err := AcquireWithRetry(context.Background(), locker, testPolicy(20*time.Millisecond))

		assert.Nil(t, err)
		assert.Equal(t, "", token)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("Context Cancelled", func(t *testing.T) {
		locker := vaultMocks.NewMockLocker(t)
		locker.EXPECT().TryAcquire(time.Minute).Return("", nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		policy := testPolicy(time.Minute)
		policy.RetryDelay = time.Minute

		token, err := AcquireWithRetry(ctx, locker, policy)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, "", token)
	})

	t.Run("Locker Error", func(t *testing.T) {
		locker := vaultMocks.NewMockLocker(t)
		locker.EXPECT().TryAcquire(time.Minute).Return("", common.ErrTransientIO).Once()

		token, err := AcquireWithRetry(context.Background(), locker, testPolicy(time.Second))

		assert.ErrorIs(t, err, common.ErrTransientIO)
		assert.Equal(t, "", token)
	})

}

func TestMongoLocker(t *testing.T) {

	t.Run("Acquire", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().XLock(BalanceLockResource, time.Minute).Return("lock-id", nil).Once()

		token, err := NewMongoLocker(BalanceLockResource).TryAcquire(time.Minute)

		assert.Nil(t, err)
		assert.Equal(t, "lock-id", token)
	})

	t.Run("Held Elsewhere Purges Expired", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().XLock(BalanceLockResource, time.Minute).Return("", lock.ErrAlreadyLocked).Once()
		mockDB.EXPECT().PurgeExpiredLocks().Return(errors.New("purge failed")).Once()

		token, err := NewMongoLocker(BalanceLockResource).TryAcquire(time.Minute)

		assert.Nil(t, err)
		assert.Equal(t, "", token)
	})

	t.Run("Lock Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().XLock(BalanceLockResource, mock.Anything).Return("", errors.New("connection reset")).Once()

		_, err := NewMongoLocker(BalanceLockResource).TryAcquire(time.Minute)

		assert.ErrorIs(t, err, common.ErrTransientIO)
	})

	t.Run("Release", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().Unlock("lock-id").Return(nil).Once()

		err := NewMongoLocker(BalanceLockResource).Release("lock-id")

		assert.Nil(t, err)
	})

	t.Run("Release Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().Unlock("lock-id").Return(errors.New("timeout")).Once()

		err := NewMongoLocker(BalanceLockResource).Release("lock-id")

		assert.ErrorIs(t, err, common.ErrTransientIO)
	})

}
