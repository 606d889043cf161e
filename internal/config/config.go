package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/lightsout-backend/internal/lightsout"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Storage    Storage `yaml:"storage"`
	Redis      Redis   `yaml:"redis"`
	Game       Game    `yaml:"game"`
}

type Storage struct {
	Driver  string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	GameTTL time.Duration `yaml:"game-ttl" env:"STORAGE_GAME_TTL" env-default:"24h"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	Rows                int     `yaml:"rows" env:"GAME_ROWS" env-default:"5"`
	Cols                int     `yaml:"cols" env:"GAME_COLS" env-default:"5"`
	ChanceLightStartsOn float64 `yaml:"chance-light-starts-on" env:"GAME_CHANCE_LIGHT_STARTS_ON" env-default:"0.5"`
	Solvable            bool    `yaml:"solvable" env:"GAME_SOLVABLE" env-default:"false"`
	ShuffleFlips        int     `yaml:"shuffle-flips" env:"GAME_SHUFFLE_FLIPS" env-default:"5"`
	MaxRows             int     `yaml:"max-rows" env:"GAME_MAX_ROWS" env-default:"64"`
	MaxCols             int     `yaml:"max-cols" env:"GAME_MAX_COLS" env-default:"64"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Storage.Driver {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("unknown storage driver %q", that.Storage.Driver)
	}

	if that.Game.ShuffleFlips < 0 {
		return fmt.Errorf("shuffle-flips must not be negative: %d", that.Game.ShuffleFlips)
	}

	if that.Game.MaxRows < 1 || that.Game.MaxCols < 1 {
		return fmt.Errorf("max board size must be positive: %dx%d", that.Game.MaxRows, that.Game.MaxCols)
	}

	gameConf := that.GameConfig()
	if err := gameConf.Validate(); err != nil {
		return err
	}

	if gameConf.Rows > that.Game.MaxRows || gameConf.Cols > that.Game.MaxCols {
		return fmt.Errorf("default board %dx%d exceeds max-rows/max-cols %dx%d",
			gameConf.Rows, gameConf.Cols, that.Game.MaxRows, that.Game.MaxCols)
	}

	return nil
}

// GameConfig - board settings used when a client does not send its own.
func (that *Config) GameConfig() lightsout.Config {
	return lightsout.Config{
		Rows:                that.Game.Rows,
		Cols:                that.Game.Cols,
		ChanceLightStartsOn: that.Game.ChanceLightStartsOn,
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
