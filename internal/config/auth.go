package config

import (
	"fmt"
	"os"
	"strconv"
)

// AuthConfig holds token signing parameters. The secret is process-wide and
// read-only after startup.
type AuthConfig struct {
	SecretKey         string
	Algorithm         string
	ExpirationMinutes int64
}

// LoadAuthConfig loads token configuration from environment variables.
// JWT_SECRET_KEY is required; algorithm defaults to HS256 and the token
// lifetime to 30 minutes.
func LoadAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	algorithm := os.Getenv("JWT_ALGORITHM")
	if algorithm == "" {
		algorithm = "HS256"
	}

	expMinutes := int64(30)
	if v := os.Getenv("JWT_EXPIRATION_MINUTES"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %q", v)
		}
		expMinutes = parsed
	}

	return &AuthConfig{
		SecretKey:         secret,
		Algorithm:         algorithm,
		ExpirationMinutes: expMinutes,
	}, nil
}
