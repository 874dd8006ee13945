// Package config reads the demo driver's settings from the environment
package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/agricola/data"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ErrPlayerCount = errors.New("player count must be between 1 and 4")
	ErrLogLevel    = errors.New("unknown log level")
)

type Config struct {
	Players  int    `env:"AGRICOLA_PLAYERS,default=2"`
	Seed     int64  `env:"AGRICOLA_SEED,default=0"`
	LogLevel string `env:"AGRICOLA_LOG_LEVEL,default=info"`
	LogDev   bool   `env:"AGRICOLA_LOG_DEV,default=false"`
	DataDir  string `env:"AGRICOLA_DATA_DIR"`
}

// Load decodes the environment into a Config and validates it
func Load() (Config, error) {
	cfg := Config{}
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Players < 1 || c.Players > 4 {
		return fmt.Errorf("%w, got %d", ErrPlayerCount, c.Players)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w %q", ErrLogLevel, c.LogLevel)
	}
	return nil
}

// Logger builds a development or production logger at the configured level
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrLogLevel, c.LogLevel)
	}

	zc := zap.NewProductionConfig()
	if c.LogDev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// Rand seeds a generator from Seed, or from the clock when Seed is 0
func (c Config) Rand() *rand.Rand {
	seed := uint64(c.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1))
}

// Tables loads the card and action tables from DataDir, or the built-in
// tables when it is not set
func (c Config) Tables() (*data.Tables, error) {
	if c.DataDir == "" {
		return data.Default()
	}
	return data.Load(os.DirFS(c.DataDir))
}
