package config

import "github.com/kelseyhightower/envconfig"

// Config is read from SHOP_* environment variables.
type Config struct {
	ListenAddr    string `envconfig:"LISTEN_ADDR" default:":8082"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	SessionCookie string `envconfig:"SESSION_COOKIE" default:"shop_session"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("shop", &c)
	return c, err
}
