package vault

import (
	"context"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/common"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	lock "github.com/square/mongo-lock"
)

const (
	BalanceLockResource = "vault_balance"
)

// Locker is an exclusive lock with no owner beyond the token it hands out.
// TryAcquire returns an empty token when the lock is held elsewhere.
type Locker interface {
	TryAcquire(ttl time.Duration) (string, error)
	Release(token string) error
}

// MongoLocker locks a resource in the shared locks collection.
type MongoLocker struct {
	resource string
}

func (l *MongoLocker) TryAcquire(ttl time.Duration) (string, error) {
	token, err := app.DB.XLock(l.resource, ttl)
	if err == nil {
		log.Debug("[VAULT] Acquired lock on ", l.resource)
		return token, nil
	}
	if !errors.Is(err, lock.ErrAlreadyLocked) {
		return "", errors.Wrapf(common.ErrTransientIO, "lock %s: %v", l.resource, err)
	}

	// a holder that died keeps the lock until its ttl passes and it is purged
	if err := app.DB.PurgeExpiredLocks(); err != nil {
		log.Warn("[VAULT] Error purging expired locks: ", err)
	}
	log.Debug("[VAULT] Lock on ", l.resource, " is held elsewhere")
	return "", nil
}

func (l *MongoLocker) Release(token string) error {
	if err := app.DB.Unlock(token); err != nil {
		return errors.Wrapf(common.ErrTransientIO, "unlock %s: %v", l.resource, err)
	}
	log.Debug("[VAULT] Released lock on ", l.resource)
	return nil
}

func NewMongoLocker(resource string) *MongoLocker {
	return &MongoLocker{resource: resource}
}

// AcquirePolicy bounds how long a caller waits for the lock. Timeout is
// measured on the wall clock, not in attempts.
type AcquirePolicy struct {
	Timeout    time.Duration
	RetryDelay time.Duration
	LockTTL    time.Duration
}

func DefaultAcquirePolicy() AcquirePolicy {
	return AcquirePolicy{
		Timeout:    45 * time.Second,
		RetryDelay: time.Second,
		LockTTL:    2 * time.Minute,
	}
}

func AcquirePolicyFromConfig() AcquirePolicy {
	return AcquirePolicy{
		Timeout:    time.Duration(app.Config.Vault.LockTimeoutMillis) * time.Millisecond,
		RetryDelay: time.Duration(app.Config.Vault.LockRetryMillis) * time.Millisecond,
		LockTTL:    time.Duration(app.Config.Vault.LockTTLMillis) * time.Millisecond,
	}
}

// AcquireWithRetry polls the locker until it hands out a token or the policy
// timeout elapses, in which case it returns an empty token and no error.
func AcquireWithRetry(ctx context.Context, locker Locker, policy AcquirePolicy) (string, error) {
	deadline := time.Now().Add(policy.Timeout)
	for {
		token, err := locker.TryAcquire(policy.LockTTL)
		if err != nil {
			return "", err
		}
		if token != "" {
			return token, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", nil
		}
		delay := policy.RetryDelay
		if delay > remaining {
			delay = remaining
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}
}
