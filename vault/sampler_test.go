package vault

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	vaultMocks "github.com/dan13ram/clpd-settlement/vault/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewBalanceSamplerService(t *testing.T) {

	t.Run("Invalid Schedule", func(t *testing.T) {
		coordinator := NewCoordinator(&memLocker{}, vaultMocks.NewMockBalanceFetcher(t), testPolicy(time.Second))
		service, err := NewBalanceSamplerService(coordinator, "every now and then", time.Second, &sync.WaitGroup{})

		assert.NotNil(t, err)
		assert.Nil(t, service)
	})

	t.Run("Disabled", func(t *testing.T) {
		app.Config.BalanceSampler.Enabled = false
		defer func() { app.Config.BalanceSampler.Enabled = false }()

		coordinator := NewCoordinator(&memLocker{}, vaultMocks.NewMockBalanceFetcher(t), testPolicy(time.Second))
		service := NewBalanceSamplerServiceFromConfig(coordinator, &sync.WaitGroup{})

		assert.IsType(t, &app.EmptyService{}, service)
	})

}

func TestBalanceSamplerService(t *testing.T) {

	t.Run("Start And Stop", func(t *testing.T) {
		coordinator := NewCoordinator(&memLocker{}, vaultMocks.NewMockBalanceFetcher(t), testPolicy(time.Second))
		wg := &sync.WaitGroup{}
		service, err := NewBalanceSamplerService(coordinator, "@every 1h", time.Second, wg)
		assert.Nil(t, err)

		wg.Add(1)
		go service.Start()
		service.Stop()
		wg.Wait()

		health := service.Health()
		assert.Equal(t, BalanceSamplerName, health.Name)
		assert.True(t, health.Healthy)
	})

	t.Run("Failed Sample Marks Unhealthy", func(t *testing.T) {
		fetcher := vaultMocks.NewMockBalanceFetcher(t)
		fetcher.EXPECT().FetchBalance(mock.Anything).Return(0.0, errors.New("vault down")).Once()

		coordinator := NewCoordinator(&memLocker{}, fetcher, testPolicy(time.Second))
		service, err := NewBalanceSamplerService(coordinator, "@every 1h", time.Second, &sync.WaitGroup{})
		assert.Nil(t, err)

		service.run()

		health := service.Health()
		assert.False(t, health.Healthy)
		assert.False(t, health.LastSyncTime.IsZero())
	})

}
