package app

import (
	"sync"
	"time"

	"github.com/dan13ram/clpd-settlement/models"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Start()
	Health() models.ServiceHealth
	Stop()
}

// Runner is the unit of periodic work driven by a RunnerService
type Runner interface {
	Run()
	Status() models.RunnerStatus
}

type RunnerService struct {
	name     string
	runner   Runner
	wg       *sync.WaitGroup
	stop     chan bool
	interval time.Duration

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func (x *RunnerService) Start() {
	log.Infof("[%s] Starting service", x.name)
	stop := false
	for !stop {
		log.Infof("[%s] Starting run", x.name)
		x.runner.Run()
		x.updateHealth()

		log.Infof("[%s] Finished run, sleeping for %s", x.name, x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Infof("[%s] Stopped service", x.name)
		case <-time.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) updateHealth() {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	status := x.runner.Status()
	lastSyncTime := time.Now()

	x.health = models.ServiceHealth{
		Name:           x.name,
		LastSyncTime:   lastSyncTime,
		NextSyncTime:   lastSyncTime.Add(x.interval),
		EthBlockNumber: status.EthBlockNumber,
		Cursor:         status.Cursor,
		LastError:      status.LastError,
		Healthy:        status.LastError == "",
	}
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

// Stop signals the run loop to exit. Stopping a service that was never
// started returns immediately.
func (x *RunnerService) Stop() {
	log.Debugf("[%s] Stopping service", x.name)
	select {
	case x.stop <- true:
	default:
	}
}

func NewRunnerService(name string, runner Runner, wg *sync.WaitGroup, interval time.Duration) *RunnerService {
	if name == "" || runner == nil || wg == nil || interval <= 0 {
		log.Error("[RUNNER] Invalid parameters for runner service")
		return nil
	}

	x := &RunnerService{
		name:     name,
		runner:   runner,
		wg:       wg,
		stop:     make(chan bool, 1),
		interval: interval,
	}
	x.health = models.ServiceHealth{Name: name, Healthy: true}
	return x
}

type EmptyService struct {
	wg *sync.WaitGroup
}

func (e *EmptyService) Start() {}

func (e *EmptyService) Stop() {
	e.wg.Done()
}

const EmptyServiceName = "empty"

func (e *EmptyService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         EmptyServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		Healthy:      true,
	}
}

func NewEmptyService(wg *sync.WaitGroup) *EmptyService {
	return &EmptyService{
		wg: wg,
	}
}
