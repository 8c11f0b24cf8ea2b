package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first if present; real environment variables
// win over it.
//
// Recognized variables: RUN_ADDRESS, STORAGE_DRIVER, DATA_DIR, DATABASE_DSN,
// SECRET_KEY, TOKEN_VALIDITY_MINUTES, ALLOW_SELF_ROLE_CHANGE, S3_BUCKET,
// S3_REGION, S3_BASE_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY, LOG_LEVEL.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString := func(name string, dst *string) {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	setString("RUN_ADDRESS", &config.RunAddress)
	setString("STORAGE_DRIVER", &config.StorageDriver)
	setString("DATA_DIR", &config.DataDir)
	setString("DATABASE_DSN", &config.DatabaseDSN)
	setString("SECRET_KEY", &config.SecretKey)
	setString("S3_BUCKET", &config.S3Bucket)
	setString("S3_REGION", &config.S3Region)
	setString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	setString("S3_ACCESS_KEY", &config.S3AccessKey)
	setString("S3_SECRET_KEY", &config.S3SecretKey)
	setString("LOG_LEVEL", &config.LogLevel)

	if v, ok := os.LookupEnv("TOKEN_VALIDITY_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}

	if v, ok := os.LookupEnv("ALLOW_SELF_ROLE_CHANGE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.AllowSelfRoleChange = b
		}
	}
}
