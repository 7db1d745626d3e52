package app

import (
	"os"
	"strings"

	"github.com/dan13ram/clpd-settlement/common"
	"github.com/dan13ram/clpd-settlement/models"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readKeysFromGSM()
	setConfigDefaults()
	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}

	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}

	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}

	log.Debug("[CONFIG] Config loaded from file: ", configFile)
	return true
}

func setConfigDefaults() {
	if Config.MongoDB.TimeoutMillis == 0 {
		Config.MongoDB.TimeoutMillis = 2000
	}
	if Config.Ethereum.RPCTimeoutMillis == 0 {
		Config.Ethereum.RPCTimeoutMillis = 5000
	}
	if Config.Ethereum.TokenDecimals == 0 {
		Config.Ethereum.TokenDecimals = common.DefaultTokenDecimals
	}
	if Config.Ethereum.MaxQueryBlocks == 0 {
		Config.Ethereum.MaxQueryBlocks = common.DefaultMaxQueryBlocks
	}
	if Config.Approval.TokenTTLMillis == 0 {
		Config.Approval.TokenTTLMillis = 24 * 60 * 60 * 1000
	}
	if Config.Vault.FetchTimeoutMillis == 0 {
		Config.Vault.FetchTimeoutMillis = 30000
	}
	if Config.Vault.LockTimeoutMillis == 0 {
		Config.Vault.LockTimeoutMillis = 45000
	}
	if Config.Vault.LockRetryMillis == 0 {
		Config.Vault.LockRetryMillis = 1000
	}
	if Config.Vault.LockTTLMillis == 0 {
		Config.Vault.LockTTLMillis = 120000
	}
	if Config.ObjectStorage.Bucket == "" {
		Config.ObjectStorage.Bucket = "deposit-proofs"
	}
	if Config.ObjectStorage.MaxUploadBytes == 0 {
		Config.ObjectStorage.MaxUploadBytes = 5 * 1024 * 1024
	}
	if Config.Converter.TimeoutMillis == 0 {
		Config.Converter.TimeoutMillis = 30000
	}
	if Config.NotificationDispatcher.MaxAttempts == 0 {
		Config.NotificationDispatcher.MaxAttempts = 5
	}
	if Config.BalanceSampler.Schedule == "" {
		Config.BalanceSampler.Schedule = "@every 10m"
	}
	if Config.HTTPServer.Address == "" {
		Config.HTTPServer.Address = ":8080"
	}
	Config.Approval.BaseURL = strings.TrimSuffix(Config.Approval.BaseURL, "/")
	Config.ObjectStorage.PublicBaseURL = strings.TrimSuffix(Config.ObjectStorage.PublicBaseURL, "/")
}

func validateServiceConfig(name string, config models.ServiceConfig) {
	if config.Enabled && config.IntervalMillis == 0 {
		log.Fatalf("[CONFIG] %s.IntervalMillis is required", name)
	}
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")

	// mongodb
	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}
	if Config.MongoDB.TimeoutMillis == 0 {
		log.Fatal("[CONFIG] MongoDB.TimeoutMillis is required")
	}

	// ethereum
	if Config.Ethereum.RPCURL == "" {
		log.Fatal("[CONFIG] Ethereum.RPCURL is required")
	}
	if Config.Ethereum.ChainID == "" {
		log.Fatal("[CONFIG] Ethereum.ChainID is required")
	}
	if Config.Ethereum.StartBlockNumber <= 0 {
		log.Fatal("[CONFIG] Ethereum.StartBlockNumber is required")
	}
	if Config.Ethereum.Confirmations < 0 {
		log.Fatal("[CONFIG] Ethereum.Confirmations must be non-negative")
	}
	if _, err := common.NormalizeAddress(Config.Ethereum.TokenAddress); err != nil {
		log.Fatal("[CONFIG] Ethereum.TokenAddress is invalid: ", err)
	}
	if Config.Ethereum.MaxQueryBlocks <= 0 {
		log.Fatal("[CONFIG] Ethereum.MaxQueryBlocks must be positive")
	}
	if Config.Ethereum.TokenDecimals > 36 {
		log.Fatal("[CONFIG] Ethereum.TokenDecimals must be at most 36")
	}

	// approval
	if Config.Approval.BaseURL == "" {
		log.Fatal("[CONFIG] Approval.BaseURL is required")
	}

	// vault
	if Config.Vault.APIURL == "" {
		log.Fatal("[CONFIG] Vault.APIURL is required")
	}
	if Config.Vault.APIKey == "" {
		log.Fatal("[CONFIG] Vault.APIKey is required")
	}
	if Config.Vault.LockRetryMillis > Config.Vault.LockTimeoutMillis {
		log.Fatal("[CONFIG] Vault.LockRetryMillis must not exceed Vault.LockTimeoutMillis")
	}

	// notifications
	if Config.Discord.Enabled && Config.Discord.WebhookURL == "" {
		log.Fatal("[CONFIG] Discord.WebhookURL is required")
	}
	if Config.Email.Enabled {
		if Config.Email.APIURL == "" {
			log.Fatal("[CONFIG] Email.APIURL is required")
		}
		if Config.Email.APIKey == "" {
			log.Fatal("[CONFIG] Email.APIKey is required")
		}
		if Config.Email.From == "" {
			log.Fatal("[CONFIG] Email.From is required")
		}
	}

	// object storage
	if Config.ObjectStorage.PublicBaseURL == "" {
		log.Fatal("[CONFIG] ObjectStorage.PublicBaseURL is required")
	}

	// http server
	if Config.HTTPServer.Enabled && Config.HTTPServer.APIKey == "" {
		log.Fatal("[CONFIG] HTTPServer.APIKey is required")
	}

	// services
	validateServiceConfig("MintReconciler", Config.MintReconciler)
	validateServiceConfig("NotificationDispatcher", models.ServiceConfig{
		Enabled:        Config.NotificationDispatcher.Enabled,
		IntervalMillis: Config.NotificationDispatcher.IntervalMillis,
	})
	if Config.HealthCheck.IntervalMillis == 0 {
		log.Fatal("[CONFIG] HealthCheck.IntervalMillis is required")
	}

	log.Debug("[CONFIG] Config validated")
}
