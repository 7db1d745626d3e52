package app_test

import (
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/app/mocks"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

type MockService struct{}

func (e *MockService) Start() {}

func (e *MockService) Stop() {}

const MockServiceName = "mock"

func (e *MockService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         MockServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Cursor:       "100",
		Healthy:      true,
	}
}

type FailingService struct {
	MockService
}

func (e *FailingService) Health() models.ServiceHealth {
	health := e.MockService.Health()
	health.Name = "failing"
	health.LastError = "rpc unreachable"
	health.Healthy = false
	return health
}

func newTestHealthCheck() *app.HealthCheckRunner {
	app.Config.Ethereum.TokenAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	app.Config.Ethereum.ChainID = "31337"
	x := app.NewHealthCheck()
	wg := &sync.WaitGroup{}
	x.SetServices([]app.Service{
		app.NewEmptyService(wg),
		app.NewEmptyService(wg),
		&MockService{},
	})
	return x
}

func TestHealthStatus(t *testing.T) {
	x := newTestHealthCheck()

	status := x.Status()
	assert.Equal(t, "", status.EthBlockNumber)
	assert.Equal(t, "", status.Cursor)
}

func TestServiceHealths(t *testing.T) {
	x := newTestHealthCheck()

	healths := x.ServiceHealths()

	assert.Equal(t, 1, len(healths))
	assert.Equal(t, MockServiceName, healths[0].Name)
}

func TestHealthy(t *testing.T) {
	x := newTestHealthCheck()
	assert.True(t, x.Healthy())

	x.SetServices([]app.Service{&MockService{}, &FailingService{}})
	assert.False(t, x.Healthy())
}

func TestFindLastHealth(t *testing.T) {
	hostname, _ := os.Hostname()

	t.Run("No Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := newTestHealthCheck()

		filter := bson.M{"hostname": hostname}
		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, filter, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				result.(*models.Health).Hostname = hostname
			}).
			Return(nil)

		health, err := x.FindLastHealth()

		assert.Nil(t, err)
		assert.Equal(t, hostname, health.Hostname)
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := newTestHealthCheck()

		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, mock.Anything, mock.Anything).Return(errors.New("error"))

		_, err := x.FindLastHealth()

		assert.NotNil(t, err)
		assert.Equal(t, "error", err.Error())
	})
}

func TestPostHealth(t *testing.T) {
	hostname, _ := os.Hostname()

	t.Run("No Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := newTestHealthCheck()

		filter := bson.M{"hostname": hostname}
		mockDB.EXPECT().UpsertOne(models.CollectionHealthChecks, filter, mock.Anything).
			Run(func(_ string, _ interface{}, arg interface{}) {
				update := arg.(bson.M)
				onInsert := update["$setOnInsert"].(bson.M)
				onUpdate := update["$set"].(bson.M)

				assert.Equal(t, "0x5fbdb2315678afecb367f032d93f642f64180aa3", onInsert["token_address"])
				assert.Equal(t, "31337", onInsert["chain_id"])
				assert.Equal(t, true, onUpdate["healthy"])
				assert.Len(t, onUpdate["service_healths"], 1)
			}).
			Return(nil)

		success := x.PostHealth()
		assert.True(t, success)
	})

	t.Run("Failing Service", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := newTestHealthCheck()
		x.SetServices([]app.Service{&MockService{}, &FailingService{}})

		mockDB.EXPECT().UpsertOne(models.CollectionHealthChecks, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, arg interface{}) {
				onUpdate := arg.(bson.M)["$set"].(bson.M)
				assert.Equal(t, false, onUpdate["healthy"])
			}).
			Return(nil)

		assert.True(t, x.PostHealth())
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := newTestHealthCheck()

		mockDB.EXPECT().UpsertOne(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("error"))

		success := x.PostHealth()
		assert.False(t, success)
	})

	t.Run("Via Run", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		x := newTestHealthCheck()

		mockDB.EXPECT().UpsertOne(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		x.Run()
	})
}
