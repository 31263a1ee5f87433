package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"TICTACTOE_HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"TICTACTOE_SOCKET_PORT" env-default:"8080"`
	Redis      Redis  `yaml:"redis"`
}

// Redis configures the best-move cache. The engine works without it.
type Redis struct {
	Enabled bool          `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"TICTACTOE_REDIS_TTL" env-default:"24h"`
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

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
