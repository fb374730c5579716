package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"

	// WinCheckPlacer evaluates only the auction winner after a placement.
	WinCheckPlacer = "placer"
	// WinCheckBoth evaluates player 1 then player 2 after every placement.
	WinCheckBoth = "both"
)

var (
	ErrUnknownStorage  = errors.New("unknown storage")
	ErrUnknownWinCheck = errors.New("unknown win check policy")
	ErrNegativeValue   = errors.New("value must not be negative")
)

type Config struct {
	LogLevel          string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string        `yaml:"http-port" env:"HTTP_PORT" env-default:""`
	Storage           string        `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis             Redis         `yaml:"redis"`
	SQLiteStoragePath string        `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:""`
	FinishedGameTTL   time.Duration `yaml:"finished-game-ttl" env:"FINISHED_GAME_TTL" env-default:"1h"`
	Game              Game          `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	StartingChips    int    `yaml:"starting-chips" env:"GAME_STARTING_CHIPS" env-default:"10"`
	WinCheck         string `yaml:"win-check" env:"GAME_WIN_CHECK" env-default:"placer"`
	MaxInputAttempts int    `yaml:"max-input-attempts" env:"GAME_MAX_INPUT_ATTEMPTS" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the yaml file at path when it exists, otherwise the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage)
	}

	switch that.Game.WinCheck {
	case WinCheckPlacer, WinCheckBoth:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownWinCheck, that.Game.WinCheck)
	}

	if that.FinishedGameTTL < 0 {
		return fmt.Errorf("%w: finished-game-ttl %s", ErrNegativeValue, that.FinishedGameTTL)
	}

	if that.Game.StartingChips < 0 {
		return fmt.Errorf("%w: starting-chips %d", ErrNegativeValue, that.Game.StartingChips)
	}

	if that.Game.MaxInputAttempts < 0 {
		return fmt.Errorf("%w: max-input-attempts %d", ErrNegativeValue, that.Game.MaxInputAttempts)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
