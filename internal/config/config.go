package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Engine    EngineConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration int // hours
}

type RateLimitConfig struct {
	PatternsPerMin int
	BlocksPerMin   int
	CAGEDPerMin    int
	BoardsPerHour  int
}

type EngineConfig struct {
	DefaultMaxFret int
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variables
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("server.port", "3000")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("jwt.secret", "change-me-in-production")
	viper.SetDefault("jwt.expiration", 24)
	viper.SetDefault("ratelimit.patterns_per_min", 60)
	viper.SetDefault("ratelimit.blocks_per_min", 120)
	viper.SetDefault("ratelimit.caged_per_min", 60)
	viper.SetDefault("ratelimit.boards_per_hour", 30)
	viper.SetDefault("engine.default_max_fret", 24)

	// Try to read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("server.port"),
			Env:  viper.GetString("server.env"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			Secret:     viper.GetString("jwt.secret"),
			Expiration: viper.GetInt("jwt.expiration"),
		},
		RateLimit: RateLimitConfig{
			PatternsPerMin: viper.GetInt("ratelimit.patterns_per_min"),
			BlocksPerMin:   viper.GetInt("ratelimit.blocks_per_min"),
			CAGEDPerMin:    viper.GetInt("ratelimit.caged_per_min"),
			BoardsPerHour:  viper.GetInt("ratelimit.boards_per_hour"),
		},
		Engine: EngineConfig{
			DefaultMaxFret: viper.GetInt("engine.default_max_fret"),
		},
	}

	return cfg, nil
}
