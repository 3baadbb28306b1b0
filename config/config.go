package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env       string `toml:"env"`
	LogLevel  string `toml:"log_level"`
	ApiServer ServerConfigs
	Database  DatabaseConfigs
	Redis     RedisConfigs
	Auth      AuthConfigs
	Rewards   RewardsConfigs
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`

	AllowCORS []string `toml:"allow_cors"`
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type RewardsConfigs struct {
	// LeaderboardFetchLimit bounds the number of real users pulled from the
	// database when building the leaderboard.
	LeaderboardFetchLimit int `toml:"leaderboard_fetch_limit"`

	// LeaderboardDefaultLimit is used when the client doesn't give a limit.
	LeaderboardDefaultLimit int `toml:"leaderboard_default_limit"`
	LeaderboardMaxLimit     int `toml:"leaderboard_max_limit"`
}

// Load reads configurations from the given toml file. A missing path falls
// back to environment variables only.
func Load(path string) (Configs, error) {
	cfg := Configs{}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (cfg *Configs) applyEnv() {
	setIfEnv(&cfg.Env, "ENV")
	setIfEnv(&cfg.LogLevel, "LOG_LEVEL")
	setIfEnv(&cfg.ApiServer.Host, "API_HOST")
	setIfEnv(&cfg.ApiServer.Port, "API_PORT")
	setIfEnv(&cfg.Database.Host, "MYSQL_HOST")
	setIfEnv(&cfg.Database.Port, "MYSQL_PORT")
	setIfEnv(&cfg.Database.Database, "MYSQL_DATABASE")
	setIfEnv(&cfg.Database.User, "MYSQL_USER")
	setIfEnv(&cfg.Database.Password, "MYSQL_PASSWORD")
	setIfEnv(&cfg.Redis.Addr, "REDIS_ADDR")
	setIfEnv(&cfg.Auth.TokenSecret, "TOKEN_SECRET")
}

func (cfg *Configs) applyDefaults() {
	if cfg.Env == "" {
		cfg.Env = "local"
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.ApiServer.Port == "" {
		cfg.ApiServer.Port = "8080"
	}

	if cfg.Auth.AccessToken.Name == "" {
		cfg.Auth.AccessToken.Name = "access_token"
	}

	if cfg.Auth.AccessToken.Expiration == 0 {
		cfg.Auth.AccessToken.Expiration = 24 * time.Hour
	}

	if cfg.Rewards.LeaderboardFetchLimit == 0 {
		cfg.Rewards.LeaderboardFetchLimit = 50
	}

	if cfg.Rewards.LeaderboardDefaultLimit == 0 {
		cfg.Rewards.LeaderboardDefaultLimit = 10
	}

	if cfg.Rewards.LeaderboardMaxLimit == 0 {
		cfg.Rewards.LeaderboardMaxLimit = 50
	}
}

func setIfEnv(target *string, name string) {
	if value, ok := os.LookupEnv(name); ok {
		*target = value
	}
}
