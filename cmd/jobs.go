package cmd

import (
	"os"
	"time"

	"github.com/dan13ram/clpd-settlement/app"
	"github.com/dan13ram/clpd-settlement/approval"
	"github.com/dan13ram/clpd-settlement/eth"
	"github.com/dan13ram/clpd-settlement/proof"
	"github.com/dan13ram/clpd-settlement/vault"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one mint reconciliation pass up to the confirmed head",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		defer disconnect()

		controller := approval.NewControllerFromConfig(proof.NewProcessorFromConfig(proof.NewGridFSStorage(app.Config.ObjectStorage.PublicBaseURL)))
		reconciler := eth.NewMintReconciler(controller)
		if err := reconciler.Reconcile(); err != nil {
			log.Error("[MAIN] Reconciliation failed: ", err)
			disconnect()
			os.Exit(1)
		}
		log.Info("[MAIN] Reconciliation finished at block ", reconciler.Status().Cursor)
	},
}

var sampleBalanceCmd = &cobra.Command{
	Use:   "sample-balance",
	Short: "Record one vault balance sample",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		defer disconnect()

		timeout := time.Duration(app.Config.Vault.FetchTimeoutMillis) * time.Millisecond
		if _, err := vault.SampleOnce(vault.NewCoordinatorFromConfig(), timeout); err != nil {
			disconnect()
			os.Exit(1)
		}
	},
}

func disconnect() {
	if app.DB == nil {
		return
	}
	if err := app.DB.Disconnect(); err != nil {
		log.Error("[MAIN] Error disconnecting from database: ", err)
	}
}
