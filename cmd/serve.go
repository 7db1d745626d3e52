package cmd

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dan13ram/clpd-settlement/api"
	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/approval"
	"github.com/dan13ram/clpd-settlement/eth"
	"github.com/dan13ram/clpd-settlement/notify"
	"github.com/dan13ram/clpd-settlement/proof"
	"github.com/dan13ram/clpd-settlement/vault"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the http api and the background services",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func createServices(healthcheck *app.HealthCheckRunner, wg *sync.WaitGroup) []app.Service {
	storage := proof.NewGridFSStorage(app.Config.ObjectStorage.PublicBaseURL)
	controller := approval.NewControllerFromConfig(proof.NewProcessorFromConfig(storage))
	coordinator := vault.NewCoordinatorFromConfig()

	return []app.Service{
		api.NewHTTPServiceFromConfig(controller, coordinator, storage, healthcheck, wg),
		eth.NewMintReconcilerService(wg, controller),
		notify.NewDispatcherService(wg),
		vault.NewBalanceSamplerServiceFromConfig(coordinator, wg),
	}
}

func serve() {
	initApp()

	var wg sync.WaitGroup

	healthcheck := app.NewHealthCheck()
	if last, err := healthcheck.FindLastHealth(); err == nil {
		log.Info("[MAIN] Last health posted at ", last.UpdatedAt)
	}
	services := createServices(healthcheck, &wg)
	healthcheck.SetServices(services)
	services = append(services, app.NewRunnerService(
		app.HealthServiceName,
		healthcheck,
		&wg,
		time.Duration(app.Config.HealthCheck.IntervalMillis)*time.Millisecond,
	))

	wg.Add(len(services))
	for _, service := range services {
		go service.Start()
	}
	log.Info("[MAIN] Started services: ", len(services))

	gracefulStop := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	go waitForExitSignals(gracefulStop, done)
	<-done

	log.Debug("[MAIN] Gracefully shutting down services...")
	for _, service := range services {
		service.Stop()
	}
	wg.Wait()

	if err := app.DB.Disconnect(); err != nil {
		log.Error("[MAIN] Error disconnecting from database: ", err)
	}
	log.Info("[MAIN] Services gracefully stopped")
}

func waitForExitSignals(gracefulStop chan os.Signal, done chan bool) {
	sig := <-gracefulStop
	log.Debug("[MAIN] Got signal: ", sig)
	done <- true
}
