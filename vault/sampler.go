package vault

import (
	"context"
	"sync"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const (
	BalanceSamplerName = "BALANCE SAMPLER"
)

// BalanceSamplerService records a vault balance sample on a cron schedule so
// the history has points even when nobody asks for the live balance.
type BalanceSamplerService struct {
	wg          *sync.WaitGroup
	stop        chan bool
	cron        *cron.Cron
	entry       cron.EntryID
	coordinator *Coordinator
	timeout     time.Duration

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func (x *BalanceSamplerService) Start() {
	log.Infof("[%s] Starting service", BalanceSamplerName)
	x.cron.Start()

	<-x.stop
	<-x.cron.Stop().Done()
	log.Infof("[%s] Stopped service", BalanceSamplerName)
	x.wg.Done()
}

func (x *BalanceSamplerService) Stop() {
	log.Debugf("[%s] Stopping service", BalanceSamplerName)
	select {
	case x.stop <- true:
	default:
	}
}

func (x *BalanceSamplerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	health := x.health
	health.NextSyncTime = x.cron.Entry(x.entry).Next
	return health
}

func (x *BalanceSamplerService) run() {
	_, err := SampleOnce(x.coordinator, x.timeout)

	x.healthMu.Lock()
	defer x.healthMu.Unlock()
	x.health.LastSyncTime = time.Now()
	x.health.Healthy = err == nil
}

// SampleOnce takes a single balance sample, giving up after timeout.
func SampleOnce(coordinator *Coordinator, timeout time.Duration) (models.BalanceSample, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	sample, err := coordinator.Sample(ctx)
	if err != nil {
		log.Warn("[VAULT] Balance sample skipped: ", err)
		return sample, err
	}
	log.Info("[VAULT] Recorded balance sample: ", sample.Balance)
	return sample, nil
}

func NewBalanceSamplerService(coordinator *Coordinator, schedule string, timeout time.Duration, wg *sync.WaitGroup) (*BalanceSamplerService, error) {
	x := &BalanceSamplerService{
		wg:          wg,
		stop:        make(chan bool, 1),
		cron:        cron.New(),
		coordinator: coordinator,
		timeout:     timeout,
	}
	x.health = models.ServiceHealth{Name: BalanceSamplerName, Healthy: true}

	entry, err := x.cron.AddFunc(schedule, x.run)
	if err != nil {
		return nil, err
	}
	x.entry = entry
	return x, nil
}

func NewCoordinatorFromConfig() *Coordinator {
	return NewCoordinator(
		NewMongoLocker(BalanceLockResource),
		NewVaultAPIClientFromConfig(),
		AcquirePolicyFromConfig(),
	)
}

func NewBalanceSamplerServiceFromConfig(coordinator *Coordinator, wg *sync.WaitGroup) app.Service {
	if !app.Config.BalanceSampler.Enabled {
		log.Debugf("[%s] Service disabled", BalanceSamplerName)
		return app.NewEmptyService(wg)
	}

	timeout := time.Duration(app.Config.Vault.FetchTimeoutMillis) * time.Millisecond
	service, err := NewBalanceSamplerService(coordinator, app.Config.BalanceSampler.Schedule, timeout, wg)
	if err != nil {
		log.Fatalf("[%s] Invalid schedule %q: %v", BalanceSamplerName, app.Config.BalanceSampler.Schedule, err)
	}
	return service
}
