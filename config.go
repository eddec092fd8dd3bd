package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// config is the server configuration, read from the environment after an
// optional .env file has been loaded.
type config struct {
	Addr            string        // ADDR, listen address
	TrustedProxies  []string      // TRUSTED_PROXIES, comma-separated; empty trusts none
	ShutdownTimeout time.Duration // SHUTDOWN_TIMEOUT, Go duration string
}

// loadConfig loads envFile (if it exists) and builds a config. A missing
// .env is fine: deployed servers get their environment injected. Variables
// already set in the environment win over the file.
func loadConfig(envFile string) (config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := config{
		Addr:            "localhost:3000",
		ShutdownTimeout: defaultShutdownTimeout,
	}
	if v := strings.TrimSpace(os.Getenv("ADDR")); v != "" {
		cfg.Addr = v
	}
	for _, p := range strings.Split(os.Getenv("TRUSTED_PROXIES"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.TrustedProxies = append(cfg.TrustedProxies, p)
		}
	}
	if v := strings.TrimSpace(os.Getenv("SHUTDOWN_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q, expected a positive duration like 10s", v)
		}
		cfg.ShutdownTimeout = d
	}
	return cfg, nil
}
