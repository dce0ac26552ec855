package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory where the daemon stores its state
	DatadirKey = "DATA_DIR_PATH"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// NetworkKey is the network to use. Either "mainnet", "testnet", "devnet" or "regtest"
	NetworkKey = "NETWORK"
	// GapLimitKey is the default number of consecutive unused addresses kept
	// ahead of the last used one on each account chain
	GapLimitKey = "GAP_LIMIT"
	// MetricsPortKey is the port where the prometheus metrics endpoint listens on
	MetricsPortKey = "METRICS_PORT"
	// WatchRateLimitKey is the number of watch-address requests per second
	// issued toward the sync engine
	WatchRateLimitKey = "WATCH_RATE_LIMIT"
	// WatchRateBurstKey is the number of burst tokens permitted for
	// watch-address requests toward the sync engine
	WatchRateBurstKey = "WATCH_RATE_BURST"

	// DbLocation is the folder inside the datadir containing the db
	DbLocation = "db"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("walletd", false)

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("WALLETD")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(NetworkKey, "mainnet")
	vip.SetDefault(GapLimitKey, 20)
	vip.SetDefault(MetricsPortKey, 9093)
	vip.SetDefault(WatchRateLimitKey, 10)
	vip.SetDefault(WatchRateBurstKey, 1)

	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}

	if err := initDatadir(); err != nil {
		log.WithError(err).Panic("error while creating datadir")
	}
}

// GetString returns the string value associated with the given key
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt returns the int value associated with the given key
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetDuration returns the duration value associated with the given key
func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

// Set sets the value for the given key, overriding env and defaults
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// GetDbDir returns the directory inside the datadir where the db is stored
func GetDbDir() string {
	return filepath.Join(GetString(DatadirKey), DbLocation)
}

func validate() error {
	switch net := vip.GetString(NetworkKey); net {
	case "mainnet", "testnet", "devnet", "regtest":
	default:
		return fmt.Errorf("network is unknown: %s", net)
	}

	if gapLimit := vip.GetInt(GapLimitKey); gapLimit < 1 {
		return fmt.Errorf("gap limit must be a positive number: %d", gapLimit)
	}

	return nil
}

func initDatadir() error {
	datadir := vip.GetString(DatadirKey)
	if _, err := os.Stat(datadir); os.IsNotExist(err) {
		if err := os.MkdirAll(datadir, os.ModeDir|0755); err != nil {
			return err
		}
	}
	return nil
}
