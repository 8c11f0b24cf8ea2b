// Package config handles configuration for the server component, including
// defaults, an optional JSON overlay, command-line flags, and environment
// variables (in that order, later layers winning).
package config

import "time"

// Storage driver names accepted in Config.StorageDriver.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// Config holds runtime settings for the tripvault server.
//
// Fields:
//   - RunAddress: bind address for the HTTP endpoint.
//   - StorageDriver: which record-store backend to use (file|memory|postgres|s3).
//   - DataDir: directory for the file backend's collection documents.
//   - DatabaseDSN: PostgreSQL DSN (pgx), postgres backend only.
//   - SecretKey: HMAC secret for signing tokens (HS256). Do not use the
//     test default in prod.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - AllowSelfRoleChange: when true, a profile patch may change the
//     caller's own role (the legacy behavior). Off by default.
//   - S3Bucket / S3Region / S3BaseEndpoint / S3AccessKey / S3SecretKey:
//     object storage settings, s3 backend only.
//   - LogLevel: minimum level for the structured logger.
type Config struct {
	RunAddress            string
	StorageDriver         string
	DataDir               string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	AllowSelfRoleChange   bool
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
	S3AccessKey           string
	S3SecretKey           string
	LogLevel              string
}

// loadDefaults populates Config with sensible development defaults.
func loadDefaults(config *Config) {
	config.RunAddress = ":8080"
	config.StorageDriver = DriverFile
	config.DataDir = "db"
	config.SecretKey = "dev-secret-do-not-use"
	config.TokenValidityDuration = time.Hour
	config.AllowSelfRoleChange = false
	config.LogLevel = "info"
}

// LoadConfig builds the effective configuration: defaults, then the JSON
// overlay (if -c/-config was given), then command-line flags, then
// environment variables.
func LoadConfig() *Config {
	config := &Config{}

	loadDefaults(config)
	parseJson(config)
	parseFlags(config)
	parseEnv(config)

	return config
}
