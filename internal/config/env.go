package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names understood by skypelogin.
const (
	EnvAccount  = "SKYPELOGIN_ACCOUNT"
	EnvPassword = "SKYPELOGIN_PASSWORD"
	EnvCode     = "SKYPELOGIN_CODE"
	EnvExe      = "SKYPELOGIN_EXE"
	EnvBackend  = "SKYPELOGIN_BACKEND"
)

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is fine.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config fields that have an environment variable.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvExe)); v != "" {
		c.Executable = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBackend)); v != "" {
		c.InputBackend = v
	}
}
