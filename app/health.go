package app

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dan13ram/clpd-settlement/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	HealthServiceName = "HEALTH"
)

type HealthCheckRunner struct {
	hostname     string
	tokenAddress string
	chainId      string

	servicesMu sync.RWMutex
	services   []Service
}

func (x *HealthCheckRunner) Run() {
	x.PostHealth()
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

func (x *HealthCheckRunner) FindLastHealth() (models.Health, error) {
	var health models.Health
	filter := bson.M{"hostname": x.hostname}
	err := DB.FindOne(models.CollectionHealthChecks, filter, &health)
	return health, err
}

func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	x.servicesMu.RLock()
	defer x.servicesMu.RUnlock()

	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		serviceHealth := service.Health()
		if serviceHealth.Name == EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, serviceHealth)
	}
	return serviceHealths
}

func allHealthy(healths []models.ServiceHealth) bool {
	for _, health := range healths {
		if !health.Healthy {
			return false
		}
	}
	return true
}

// Healthy reports whether every running service finished its last run.
func (x *HealthCheckRunner) Healthy() bool {
	return allHealthy(x.ServiceHealths())
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	filter := bson.M{"hostname": x.hostname}

	onInsert := bson.M{
		"hostname":      x.hostname,
		"token_address": x.tokenAddress,
		"chain_id":      x.chainId,
		"created_at":    time.Now(),
	}

	serviceHealths := x.ServiceHealths()

	onUpdate := bson.M{
		"healthy":         allHealthy(serviceHealths),
		"service_healths": serviceHealths,
		"updated_at":      time.Now(),
	}

	update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

	err := DB.UpsertOne(models.CollectionHealthChecks, filter, update)
	if err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Info("[HEALTH] Posted health")
	return true
}

func (x *HealthCheckRunner) SetServices(services []Service) {
	x.servicesMu.Lock()
	defer x.servicesMu.Unlock()

	x.services = services
}

func NewHealthCheck() *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health")

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	x := &HealthCheckRunner{
		hostname:     hostname,
		tokenAddress: strings.ToLower(Config.Ethereum.TokenAddress),
		chainId:      Config.Ethereum.ChainID,
	}

	log.Info("[HEALTH] Initialized health")
	return x
}
