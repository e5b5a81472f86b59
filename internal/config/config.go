package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address     string        `env:"RUN_ADDRESS"          envDefault:"localhost:8080"`
	Database    string        `env:"DATABASE_URI"         envDefault:""`
	LogLvl      string        `env:"LOG_LVL"              envDefault:"info"`
	AuthSecret  string        `env:"AUTH_SECRET"          envDefault:""`
	EnergySweep time.Duration `env:"ENERGY_SWEEP_INTERVAL" envDefault:"60s"`
	MiningSweep time.Duration `env:"MINING_SWEEP_INTERVAL" envDefault:"10s"`
}

// New reads the configuration from environment variables with command-line
// flag overrides. An empty DATABASE_URI selects the in-memory store.
func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN (empty runs the in-memory store)")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.AuthSecret, "s", cfg.AuthSecret, "token verification secret (empty disables request auth)")
	flag.DurationVar(&cfg.EnergySweep, "energy-sweep", cfg.EnergySweep, "energy sweep interval")
	flag.DurationVar(&cfg.MiningSweep, "mining-sweep", cfg.MiningSweep, "mining sweep interval")
	flag.Parse()

	return cfg
}
