package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. Empty or
// unset variables leave the current value in place. Duration variables are
// accepted as integers in minutes.
func parseEnv(config *Config) {
	setString := func(name string, target *string) {
		if v := os.Getenv(name); v != "" {
			*target = v
		}
	}
	setMinutes := func(name string, target *time.Duration) {
		if v := os.Getenv(name); v != "" {
			if d, err := time.ParseDuration(v + "m"); err == nil {
				*target = d
			}
		}
	}

	setString("FAIRHUB_ADDRESS", &config.EndpointAddrHTTP)
	setString("FAIRHUB_DATABASE_DSN", &config.DatabaseDSN)
	setString("FAIRHUB_SECRET_KEY", &config.SecretKey)
	setMinutes("FAIRHUB_ACCESS_TOKEN_MINUTES", &config.AccessTokenValidityDuration)
	setMinutes("FAIRHUB_REFRESH_TOKEN_MINUTES", &config.RefreshTokenValidityDuration)
	setString("FAIRHUB_S3_ROOT_USER", &config.S3RootUser)
	setString("FAIRHUB_S3_ROOT_PASSWORD", &config.S3RootPassword)
	setString("FAIRHUB_S3_BUCKET", &config.S3Bucket)
	setString("FAIRHUB_S3_REGION", &config.S3Region)
	setString("FAIRHUB_S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
}
