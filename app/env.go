package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func envString(key string, target *string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

func envInt64(key string, target *int64) {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing ", key, ": ", err.Error())
			return
		}
		*target = parsed
	}
}

func envBool(key string, target *bool) {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			log.Warn("[ENV] Error parsing ", key, ": ", err.Error())
			return
		}
		*target = parsed
	}
}

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// mongodb
	envString("MONGODB_URI", &Config.MongoDB.URI)
	envString("MONGODB_DATABASE", &Config.MongoDB.Database)
	envInt64("MONGODB_TIMEOUT_MS", &Config.MongoDB.TimeoutMillis)

	// ethereum
	envString("ETH_RPC_URL", &Config.Ethereum.RPCURL)
	envString("ETH_CHAIN_ID", &Config.Ethereum.ChainID)
	envInt64("ETH_START_BLOCK_NUMBER", &Config.Ethereum.StartBlockNumber)
	envInt64("ETH_CONFIRMATIONS", &Config.Ethereum.Confirmations)
	envInt64("ETH_RPC_TIMEOUT_MS", &Config.Ethereum.RPCTimeoutMillis)
	envString("ETH_TOKEN_ADDRESS", &Config.Ethereum.TokenAddress)
	envInt64("ETH_MAX_QUERY_BLOCKS", &Config.Ethereum.MaxQueryBlocks)
	if value := os.Getenv("ETH_TOKEN_DECIMALS"); value != "" {
		decimals, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			log.Warn("[ENV] Error parsing ETH_TOKEN_DECIMALS: ", err.Error())
		} else {
			Config.Ethereum.TokenDecimals = uint8(decimals)
		}
	}

	// approval
	envInt64("APPROVAL_TOKEN_TTL_MS", &Config.Approval.TokenTTLMillis)
	envString("APPROVAL_BASE_URL", &Config.Approval.BaseURL)

	// vault
	envString("VAULT_API_URL", &Config.Vault.APIURL)
	envString("VAULT_API_KEY", &Config.Vault.APIKey)
	envInt64("VAULT_FETCH_TIMEOUT_MS", &Config.Vault.FetchTimeoutMillis)
	envInt64("VAULT_LOCK_TIMEOUT_MS", &Config.Vault.LockTimeoutMillis)
	envInt64("VAULT_LOCK_RETRY_MS", &Config.Vault.LockRetryMillis)
	envInt64("VAULT_LOCK_TTL_MS", &Config.Vault.LockTTLMillis)

	// discord
	envBool("DISCORD_ENABLED", &Config.Discord.Enabled)
	envString("DISCORD_WEBHOOK_URL", &Config.Discord.WebhookURL)

	// email
	envBool("EMAIL_ENABLED", &Config.Email.Enabled)
	envString("EMAIL_API_URL", &Config.Email.APIURL)
	envString("EMAIL_API_KEY", &Config.Email.APIKey)
	envString("EMAIL_FROM", &Config.Email.From)

	// object storage
	envString("OBJECT_STORAGE_BUCKET", &Config.ObjectStorage.Bucket)
	envString("OBJECT_STORAGE_PUBLIC_BASE_URL", &Config.ObjectStorage.PublicBaseURL)
	envInt64("OBJECT_STORAGE_MAX_UPLOAD_BYTES", &Config.ObjectStorage.MaxUploadBytes)

	// converter
	envString("CONVERTER_URL", &Config.Converter.URL)
	envInt64("CONVERTER_TIMEOUT_MS", &Config.Converter.TimeoutMillis)

	// http server
	envBool("HTTP_SERVER_ENABLED", &Config.HTTPServer.Enabled)
	envString("HTTP_SERVER_ADDRESS", &Config.HTTPServer.Address)
	envString("HTTP_SERVER_API_KEY", &Config.HTTPServer.APIKey)
	envString("HTTP_SERVER_ALLOWED_ORIGINS", &Config.HTTPServer.AllowedOrigins)

	// mint reconciler
	envBool("MINT_RECONCILER_ENABLED", &Config.MintReconciler.Enabled)
	envInt64("MINT_RECONCILER_INTERVAL_MS", &Config.MintReconciler.IntervalMillis)

	// notification dispatcher
	envBool("NOTIFICATION_DISPATCHER_ENABLED", &Config.NotificationDispatcher.Enabled)
	envInt64("NOTIFICATION_DISPATCHER_INTERVAL_MS", &Config.NotificationDispatcher.IntervalMillis)
	envInt64("NOTIFICATION_DISPATCHER_MAX_ATTEMPTS", &Config.NotificationDispatcher.MaxAttempts)

	// balance sampler
	envBool("BALANCE_SAMPLER_ENABLED", &Config.BalanceSampler.Enabled)
	envString("BALANCE_SAMPLER_SCHEDULE", &Config.BalanceSampler.Schedule)

	// health check
	envInt64("HEALTH_CHECK_INTERVAL_MS", &Config.HealthCheck.IntervalMillis)

	// logging
	envString("LOG_LEVEL", &Config.Logger.Level)
	envString("LOG_FORMAT", &Config.Logger.Format)

	// google secret manager
	envBool("GOOGLE_SECRET_MANAGER_ENABLED", &Config.GoogleSecretManager.Enabled)
	envString("GOOGLE_PROJECT_ID", &Config.GoogleSecretManager.ProjectId)
	envString("GOOGLE_MONGO_SECRET_NAME", &Config.GoogleSecretManager.MongoSecretName)
	envString("GOOGLE_VAULT_SECRET_NAME", &Config.GoogleSecretManager.VaultSecretName)
	envString("GOOGLE_DISCORD_SECRET_NAME", &Config.GoogleSecretManager.DiscordSecretName)
	envString("GOOGLE_EMAIL_SECRET_NAME", &Config.GoogleSecretManager.EmailSecretName)
	envString("GOOGLE_HTTP_API_KEY_SECRET_NAME", &Config.GoogleSecretManager.HTTPAPIKeySecretName)
}
