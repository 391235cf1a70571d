package config

import (
	"os"
	"strings"
	"time"
)

type Env struct {
	BotToken           string
	MySQLDSN           string
	AppAddr            string
	GinMode            string
	DispatchInterval   time.Duration
	APIJWTSecret       string
	CORSAllowedOrigins []string
}

// LoadEnv reads configuration from the environment. Defaults are applied
// where the bot can run without the value; BotToken and MySQLDSN have no
// default and are validated by the caller before serving.
func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	interval := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("DISPATCH_INTERVAL")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			interval = d
		}
	}

	secret := strings.TrimSpace(os.Getenv("API_JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		BotToken:           strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		MySQLDSN:           strings.TrimSpace(os.Getenv("MYSQL_DSN")),
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		DispatchInterval:   interval,
		APIJWTSecret:       secret,
		CORSAllowedOrigins: origins,
	}
}
