package config

import (
	"fmt"
	"strings"
)

// APIConfig holds the static bearer token that gates mutating requests.
type APIConfig struct {
	Token string `koanf:"token"`
}

// String returns a string representation of the API configuration.
// The token itself is never printed.
func (c *APIConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- API ---\n")
	b.WriteString(fmt.Sprintf("  token: %s\n", maskToken(c.Token)))
	return b.String()
}

func maskToken(token string) string {
	if token == "" {
		return "<not configured>"
	}
	return "****"
}

func (c *APIConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("API token is not configured")
	}
	return nil
}
