package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/models"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	HTTPServerName = "HTTP SERVER"
)

type HTTPService struct {
	wg     *sync.WaitGroup
	server *http.Server

	healthMu sync.RWMutex
	healthy  bool
}

func (x *HTTPService) Start() {
	log.Infof("[%s] Listening on %s", HTTPServerName, x.server.Addr)
	x.setHealthy(true)

	err := x.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("[HTTP SERVER] Server stopped: ", err)
	}
	x.setHealthy(false)
	log.Infof("[%s] Stopped service", HTTPServerName)
	x.wg.Done()
}

func (x *HTTPService) Stop() {
	log.Debugf("[%s] Stopping service", HTTPServerName)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := x.server.Shutdown(ctx); err != nil {
		log.Error("[HTTP SERVER] Error shutting down: ", err)
	}
}

func (x *HTTPService) setHealthy(healthy bool) {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()
	x.healthy = healthy
}

func (x *HTTPService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	now := time.Now()
	return models.ServiceHealth{
		Name:         HTTPServerName,
		LastSyncTime: now,
		NextSyncTime: now,
		Healthy:      x.healthy,
	}
}

func NewHTTPService(handler http.Handler, address string, wg *sync.WaitGroup) *HTTPService {
	return &HTTPService{
		wg: wg,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func NewHTTPServiceFromConfig(settlement Settlement, balances BalanceReader, files FileReader, health HealthReporter, wg *sync.WaitGroup) app.Service {
	if !app.Config.HTTPServer.Enabled {
		log.Debugf("[%s] Service disabled", HTTPServerName)
		return app.NewEmptyService(wg)
	}

	if app.Config.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	h := NewHandler(settlement, balances, files, app.Config.ObjectStorage.MaxUploadBytes)
	h.SetHealthReporter(health)
	router := NewRouter(h, app.Config.HTTPServer.APIKey, app.Config.HTTPServer.AllowedOrigins)
	return NewHTTPService(router, app.Config.HTTPServer.Address, wg)
}
