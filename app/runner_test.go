package app

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dan13ram/clpd-settlement/models"
	"github.com/stretchr/testify/assert"
)

type MockRunner struct {
	mu      sync.Mutex
	runs    int
	failure string
}

func (m *MockRunner) Run() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs += 1
}

func (m *MockRunner) Status() models.RunnerStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.RunnerStatus{
		Cursor:         strconv.Itoa(m.runs),
		EthBlockNumber: "456",
		LastError:      m.failure,
	}
}

func TestRunnerService(t *testing.T) {
	mockRunner := &MockRunner{}
	interval := 100 * time.Millisecond
	wg := &sync.WaitGroup{}
	service := NewRunnerService("TestService", mockRunner, wg, interval)
	wg.Add(1)

	go service.Start()

	time.Sleep(600 * time.Millisecond)

	service.Stop()

	wg.Wait()

	health := service.Health()
	assert.True(t, health.Healthy)
	assert.Equal(t, "TestService", health.Name)
	runs, err := strconv.Atoi(health.Cursor)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, runs, 5)
	assert.Equal(t, "456", health.EthBlockNumber)
	assert.Equal(t, interval, health.NextSyncTime.Sub(health.LastSyncTime))
}

func TestRunnerServiceFailedRun(t *testing.T) {
	mockRunner := &MockRunner{failure: "rpc unreachable"}
	wg := &sync.WaitGroup{}
	service := NewRunnerService("TestService", mockRunner, wg, time.Hour)
	wg.Add(1)

	go service.Start()
	assert.Eventually(t, func() bool { return service.Health().LastError != "" }, time.Second, 10*time.Millisecond)
	service.Stop()
	wg.Wait()

	health := service.Health()
	assert.False(t, health.Healthy)
	assert.Equal(t, "rpc unreachable", health.LastError)
}

func TestNewRunnerServiceInvalidParameters(t *testing.T) {
	wg := &sync.WaitGroup{}
	invalidService := NewRunnerService("", nil, wg, 0)
	assert.Nil(t, invalidService)
}

func TestRunnerServiceStop(t *testing.T) {
	wg := &sync.WaitGroup{}
	mockRunner := &MockRunner{}
	service := NewRunnerService("TestService", mockRunner, wg, 100*time.Millisecond)

	assert.NotPanics(t, func() { service.Stop() })
	assert.Equal(t, "TestService", service.Health().Name)
}

func TestEmptyService(t *testing.T) {
	wg := &sync.WaitGroup{}
	wg.Add(1)
	service := NewEmptyService(wg)

	service.Start()
	service.Stop()
	wg.Wait()

	assert.Equal(t, EmptyServiceName, service.Health().Name)
	assert.True(t, service.Health().Healthy)
}
