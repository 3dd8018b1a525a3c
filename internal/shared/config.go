package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Backend names accepted for REMOTE_BACKEND. The backend is chosen once at
// startup and never switched at runtime.
const (
	BackendDocstore = "docstore"
	BackendMySQL    = "mysql"
	BackendNone     = "none"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	RemoteBackend string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	AuthBase      string
	AuthKey       string
	CachePath     string
	GenDelay      time.Duration
	ImportDelay   time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		RemoteBackend: env("REMOTE_BACKEND", BackendDocstore),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/luxurybot?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		AuthBase:      env("AUTH_BASE_URL", "http://localhost:9096"),
		AuthKey:       env("AUTH_API_KEY", ""),
		CachePath:     env("CACHE_PATH", "luxurybot.db"),
		GenDelay:      time.Duration(atoi("GENERATION_DELAY_MS", 2000)) * time.Millisecond,
		ImportDelay:   time.Duration(atoi("IMPORT_STEP_DELAY_MS", 1000)) * time.Millisecond,
	}
	switch c.RemoteBackend {
	case BackendDocstore, BackendMySQL, BackendNone:
	default:
		log.Warn().Str("backend", c.RemoteBackend).Msg("unknown REMOTE_BACKEND, running without remote store")
		c.RemoteBackend = BackendNone
	}
	if c.AuthKey == "" {
		log.Warn().Msg("AUTH_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
