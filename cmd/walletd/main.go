package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/dashwallet/walletd/config"
	"github.com/dashwallet/walletd/internal/core/application"
	"github.com/dashwallet/walletd/internal/infrastructure/deriver"
	dbbadger "github.com/dashwallet/walletd/internal/infrastructure/storage/db/badger"
	"github.com/dashwallet/walletd/internal/infrastructure/syncengine"
	"github.com/dashwallet/walletd/internal/metrics"
)

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	dbManager, err := dbbadger.NewDbManager(config.GetDbDir(), nil)
	if err != nil {
		log.WithError(err).Panic("error while opening db")
	}
	defer dbManager.Close()

	engine := syncengine.NewManual()
	walletSvc := application.NewWalletService(dbManager, deriver.NewService(), engine)
	listener := application.NewSyncListener(dbManager, engine, walletSvc)

	log.Debug("starting daemon")

	go listener.Listen()

	metricsAddress := fmt.Sprintf(":%d", config.GetInt(config.MetricsPortKey))
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	go func() {
		if err := http.ListenAndServe(metricsAddress, mux); err != nil {
			log.WithError(err).Panic("error listening on metrics interface")
		}
	}()

	log.Debug("metrics interface is listening on " + metricsAddress)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	engine.Stop()
	log.Debug("exiting")
}
