package models

type Config struct {
	GoogleSecretManager    GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck            HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger                 LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB                MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	Ethereum               EthereumConfig            `yaml:"ethereum" json:"ethereum"`
	Approval               ApprovalConfig            `yaml:"approval" json:"approval"`
	Vault                  VaultConfig               `yaml:"vault" json:"vault"`
	Discord                DiscordConfig             `yaml:"discord" json:"discord"`
	Email                  EmailConfig               `yaml:"email" json:"email"`
	ObjectStorage          ObjectStorageConfig       `yaml:"object_storage" json:"object_storage"`
	Converter              ConverterConfig           `yaml:"converter" json:"converter"`
	HTTPServer             HTTPServerConfig          `yaml:"http_server" json:"http_server"`
	MintReconciler         ServiceConfig             `yaml:"mint_reconciler" json:"mint_reconciler"`
	NotificationDispatcher DispatcherConfig          `yaml:"notification_dispatcher" json:"notification_dispatcher"`
	BalanceSampler         SamplerConfig             `yaml:"balance_sampler" json:"balance_sampler"`
}

type GoogleSecretManagerConfig struct {
	Enabled              bool   `yaml:"enabled" json:"enabled"`
	ProjectId            string `yaml:"project_id" json:"project_id"`
	MongoSecretName      string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	VaultSecretName      string `yaml:"vault_secret_name" json:"vault_secret_name"`
	DiscordSecretName    string `yaml:"discord_secret_name" json:"discord_secret_name"`
	EmailSecretName      string `yaml:"email_secret_name" json:"email_secret_name"`
	HTTPAPIKeySecretName string `yaml:"http_api_key_secret_name" json:"http_api_key_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type EthereumConfig struct {
	StartBlockNumber int64  `yaml:"start_block_number" json:"start_block_number"`
	Confirmations    int64  `yaml:"confirmations" json:"confirmations"`
	RPCURL           string `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	ChainID          string `yaml:"chain_id" json:"chain_id"`
	TokenAddress     string `yaml:"token_address" json:"token_address"`
	TokenDecimals    uint8  `yaml:"token_decimals" json:"token_decimals"`
	MaxQueryBlocks   int64  `yaml:"max_query_blocks" json:"max_query_blocks"`
}

type ApprovalConfig struct {
	TokenTTLMillis int64  `yaml:"token_ttl_ms" json:"token_ttl_ms"`
	BaseURL        string `yaml:"base_url" json:"base_url"`
}

type VaultConfig struct {
	APIURL             string `yaml:"api_url" json:"api_url"`
	APIKey             string `yaml:"api_key" json:"api_key"`
	FetchTimeoutMillis int64  `yaml:"fetch_timeout_ms" json:"fetch_timeout_ms"`
	LockTimeoutMillis  int64  `yaml:"lock_timeout_ms" json:"lock_timeout_ms"`
	LockRetryMillis    int64  `yaml:"lock_retry_ms" json:"lock_retry_ms"`
	LockTTLMillis      int64  `yaml:"lock_ttl_ms" json:"lock_ttl_ms"`
}

type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled" json:"enabled"`
	WebhookURL string `yaml:"webhook_url" json:"webhook_url"`
}

type EmailConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	APIURL  string `yaml:"api_url" json:"api_url"`
	APIKey  string `yaml:"api_key" json:"api_key"`
	From    string `yaml:"from" json:"from"`
}

type ObjectStorageConfig struct {
	Bucket         string `yaml:"bucket" json:"bucket"`
	PublicBaseURL  string `yaml:"public_base_url" json:"public_base_url"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" json:"max_upload_bytes"`
}

type ConverterConfig struct {
	URL           string `yaml:"url" json:"url"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type HTTPServerConfig struct {
	Enabled        bool   `yaml:"enabled" json:"enabled"`
	Address        string `yaml:"address" json:"address"`
	APIKey         string `yaml:"api_key" json:"api_key"`
	AllowedOrigins string `yaml:"allowed_origins" json:"allowed_origins"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type DispatcherConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	MaxAttempts    int64 `yaml:"max_attempts" json:"max_attempts"`
}

type SamplerConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Schedule string `yaml:"schedule" json:"schedule"`
}
