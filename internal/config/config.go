// Package config loads runtime settings from flags, environment and an
// optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "COLORCUBE"

	// Config keys. Flag names match these so BindPFlags wires them directly.
	KeySize          = "size"
	KeyScrambleTimes = "scramble-times"
	KeyMoveSpeed     = "move-speed"
	KeyWaitForClick  = "wait-for-click"
	KeySeed          = "seed"
	KeyQueue         = "queue"
	KeyDBPath        = "db"
	KeyVerbose       = "verbose"
	KeyLogFile       = "log-file"
)

// Defaults.
const (
	DefaultSize          = 3
	DefaultScrambleTimes = 500
	DefaultMoveSpeed     = 2
	DefaultQueue         = 100
)

var (
	ErrInvalidSize          = errors.New("config: size must be odd and at least 3")
	ErrInvalidScrambleTimes = errors.New("config: scramble times must be greater than or equal to 0")
	ErrInvalidMoveSpeed     = errors.New("config: move speed must be greater than 0")
	ErrInvalidQueue         = errors.New("config: queue capacity must be greater than 0")
)

// Config holds the settings used by the run, scramble and replay commands.
type Config struct {
	Size          int
	ScrambleTimes int
	MoveSpeed     int
	WaitForClick  bool
	Seed          uint64
	Queue         int
	DBPath        string
	Verbose       bool
	LogFile       string
}

// Load builds a Config. Precedence: flags > COLORCUBE_* env > file > defaults.
// configFile may be empty, in which case only ~/.colorcube/config.yaml is
// tried, and a missing file there is not an error.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeySize, DefaultSize)
	v.SetDefault(KeyScrambleTimes, DefaultScrambleTimes)
	v.SetDefault(KeyMoveSpeed, DefaultMoveSpeed)
	v.SetDefault(KeyWaitForClick, false)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyQueue, DefaultQueue)
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogFile, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else if dir, err := DefaultDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Size:          v.GetInt(KeySize),
		ScrambleTimes: v.GetInt(KeyScrambleTimes),
		MoveSpeed:     v.GetInt(KeyMoveSpeed),
		WaitForClick:  v.GetBool(KeyWaitForClick),
		Seed:          v.GetUint64(KeySeed),
		Queue:         v.GetInt(KeyQueue),
		DBPath:        v.GetString(KeyDBPath),
		Verbose:       v.GetBool(KeyVerbose),
		LogFile:       v.GetString(KeyLogFile),
	}
	return cfg, nil
}

// Validate checks the settings the way the command line expects them.
func (c *Config) Validate() error {
	if c.Size < 3 || c.Size%2 == 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidSize, c.Size)
	}
	if c.ScrambleTimes < 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidScrambleTimes, c.ScrambleTimes)
	}
	if c.MoveSpeed <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidMoveSpeed, c.MoveSpeed)
	}
	if c.Queue <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidQueue, c.Queue)
	}
	return nil
}

// DefaultDir returns ~/.colorcube, creating it if needed.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".colorcube")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return dir, nil
}
