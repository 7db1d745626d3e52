package cmd

import (
	"path/filepath"

	"github.com/dan13ram/clpd-settlement/app"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	envPath    string
	rootCmd    = &cobra.Command{
		Use:   "settlement",
		Short: "CLPD deposit and redemption settlement",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		log.Fatal("[MAIN] Error resolving path ", path, ": ", err)
	}
	return abs
}

// initApp loads config, sets up logging and connects to the database.
func initApp() {
	app.InitConfig(absPath(configPath), absPath(envPath))
	app.InitLogger()
	app.InitDB()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the yaml config file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "", "path to a .env file")

	rootCmd.AddCommand(serveCmd, reconcileCmd, sampleBalanceCmd)
}
