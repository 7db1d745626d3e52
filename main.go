package main

import (
	"os"

	"github.com/dan13ram/clpd-settlement/cmd"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
