// Package vault serves the custodial vault balance. Fetches are serialized
// by a distributed lock; callers that cannot get the lock in time are served
// the latest stored sample instead.
package vault

import (
	"context"
	"math"
	"time"

	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/dan13ram/clpd-settlement/store"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Coordinator struct {
	locker  Locker
	fetcher BalanceFetcher
	policy  AcquirePolicy
}

func NewCoordinator(locker Locker, fetcher BalanceFetcher, policy AcquirePolicy) *Coordinator {
	return &Coordinator{
		locker:  locker,
		fetcher: fetcher,
		policy:  policy,
	}
}

// CurrentBalance fetches a fresh balance under the lock. When the lock stays
// busy for the whole acquire timeout the latest stored sample is returned.
func (c *Coordinator) CurrentBalance(ctx context.Context) (models.BalanceSample, error) {
	token, err := AcquireWithRetry(ctx, c.locker, c.policy)
	if err != nil {
		return models.BalanceSample{}, err
	}
	if token == "" {
		log.Info("[VAULT] Lock not acquired in ", c.policy.Timeout, ", using stored balance")
		return c.StoredBalance()
	}
	defer c.release(token)

	return c.refresh(ctx)
}

// Sample takes one fresh reading for the history. It does not wait for the
// lock: a fetch already in flight will record its own sample.
func (c *Coordinator) Sample(ctx context.Context) (models.BalanceSample, error) {
	token, err := c.locker.TryAcquire(c.policy.LockTTL)
	if err != nil {
		return models.BalanceSample{}, err
	}
	if token == "" {
		return models.BalanceSample{}, errors.Wrap(common.ErrConflict, "a balance fetch is already in progress")
	}
	defer c.release(token)

	return c.refresh(ctx)
}

func (c *Coordinator) release(token string) {
	if err := c.locker.Release(token); err != nil {
		log.Error("[VAULT] Error releasing balance lock: ", err)
	}
}

func (c *Coordinator) refresh(ctx context.Context) (models.BalanceSample, error) {
	log.Debug("[VAULT] Fetching vault balance")
	balance, err := c.fetcher.FetchBalance(ctx)
	if err != nil {
		return models.BalanceSample{}, err
	}

	// a zero reading is a failed scrape, not an empty vault
	if balance <= 0 || math.IsNaN(balance) || math.IsInf(balance, 0) {
		return models.BalanceSample{}, errors.Wrapf(common.ErrExternalSource, "implausible vault balance %v", balance)
	}

	sample := models.BalanceSample{
		Timestamp: time.Now(),
		Balance:   balance,
		Source:    models.BalanceSourceVault,
	}
	if err := store.AppendBalanceSample(sample); err != nil {
		log.Error("[VAULT] Error storing balance sample: ", err)
	}
	log.Info("[VAULT] Vault balance: ", balance)
	return sample, nil
}

// StoredBalance returns the latest stored sample without touching the vault.
func (c *Coordinator) StoredBalance() (models.BalanceSample, error) {
	sample, err := store.LatestBalanceSample()
	if err != nil {
		return models.BalanceSample{}, err
	}
	if sample == nil {
		return models.BalanceSample{}, errors.Wrap(common.ErrNotFound, "no balance available")
	}
	cached := *sample
	cached.Source = models.BalanceSourceCache
	return cached, nil
}

// HistoricalBalance returns the samples taken within period, oldest first.
func (c *Coordinator) HistoricalBalance(period string) ([]models.BalanceSample, error) {
	since, err := PeriodStart(period, time.Now())
	if err != nil {
		return nil, err
	}
	return store.BalanceSamplesSince(since)
}

// PeriodStart maps a history period to its first instant. An empty period
// means a year.
func PeriodStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case models.PeriodDay:
		return now.AddDate(0, 0, -1), nil
	case models.PeriodWeek:
		return now.AddDate(0, 0, -7), nil
	case models.PeriodMonth:
		return now.AddDate(0, -1, 0), nil
	case models.PeriodYear, "":
		return now.AddDate(-1, 0, 0), nil
	}
	return time.Time{}, errors.Wrapf(common.ErrValidation, "unknown period %q", period)
}
