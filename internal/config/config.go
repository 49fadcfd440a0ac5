package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Lister error modes. Suppress mirrors the historical behavior of the
// merge tool: a failed listing call is logged and treated as "nothing
// found". Propagate surfaces the error to the caller instead.
const (
	ListerErrorModeSuppress  = "suppress"
	ListerErrorModePropagate = "propagate"
)

type Config struct {
	RPC    RPCConfig
	Merge  MergeConfig
	Lister ListerConfig
	Server ServerConfig
	Log    LogConfig
}

type RPCConfig struct {
	URL string
}

type MergeConfig struct {
	// BatchSize is the maximum number of coin objects folded into one
	// merge transaction.
	BatchSize int
	// PageLimit is the number of coin objects requested per listing page.
	PageLimit int
	// ObjectCap is the hard stop on total objects fetched per coin type.
	ObjectCap int
	// InterBatchDelay is the pause between successive transaction
	// submissions within one coin type.
	InterBatchDelay time.Duration
	// GasBudget is passed to the node when building merge transactions,
	// in MIST.
	GasBudget uint64
	// DryRun lists and partitions but submits nothing.
	DryRun bool
}

type ListerConfig struct {
	ErrorMode string
}

type ServerConfig struct {
	// MetricsPort exposes /metrics and /healthz while a run is in
	// progress. 0 disables the server.
	MetricsPort int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		RPC: RPCConfig{
			URL: getEnv("RPC_URL", "https://fullnode.mainnet.sui.io:443"),
		},
		Merge: MergeConfig{
			BatchSize:       getEnvInt("BATCH_SIZE", 500),
			PageLimit:       getEnvInt("PAGE_LIMIT", 50),
			ObjectCap:       getEnvInt("OBJECT_CAP", 5000),
			InterBatchDelay: time.Duration(getEnvInt("INTER_BATCH_DELAY_MS", 1000)) * time.Millisecond,
			GasBudget:       uint64(getEnvInt("GAS_BUDGET", 50_000_000)),
			DryRun:          getEnvBool("DRY_RUN", false),
		},
		Lister: ListerConfig{
			ErrorMode: getEnv("LISTER_ERROR_MODE", ListerErrorModeSuppress),
		},
		Server: ServerConfig{
			MetricsPort: getEnvInt("METRICS_PORT", 0),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.RPC.URL == "" {
		return fmt.Errorf("RPC_URL is required")
	}
	if c.Merge.BatchSize <= 0 {
		return fmt.Errorf("BATCH_SIZE must be positive, got %d", c.Merge.BatchSize)
	}
	if c.Merge.PageLimit <= 0 {
		return fmt.Errorf("PAGE_LIMIT must be positive, got %d", c.Merge.PageLimit)
	}
	if c.Merge.ObjectCap <= 0 {
		return fmt.Errorf("OBJECT_CAP must be positive, got %d", c.Merge.ObjectCap)
	}
	if c.Merge.InterBatchDelay < 0 {
		return fmt.Errorf("INTER_BATCH_DELAY_MS must not be negative")
	}
	if c.Merge.GasBudget == 0 {
		return fmt.Errorf("GAS_BUDGET must be positive")
	}
	switch c.Lister.ErrorMode {
	case ListerErrorModeSuppress, ListerErrorModePropagate:
	default:
		return fmt.Errorf("LISTER_ERROR_MODE must be %q or %q, got %q",
			ListerErrorModeSuppress, ListerErrorModePropagate, c.Lister.ErrorMode)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
