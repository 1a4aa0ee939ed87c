package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Env is the whole runtime configuration. It is built once in main and
// passed down explicitly.
type Env struct {
	AppAddr string
	GinMode string

	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxOpenConns int

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string

	AuthRatePerMinute int
	MigrateOnStart    bool
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads .env when present, then the process environment.
func LoadEnv() Env {
	// .env is optional
	_ = godotenv.Load()
	return envFrom(os.LookupEnv)
}

func envFrom(lookup func(string) (string, bool)) Env {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}
	getInt := func(key string, def int) int {
		if n, err := strconv.Atoi(get(key, "")); err == nil && n > 0 {
			return n
		}
		return def
	}

	ttl, err := time.ParseDuration(get("JWT_TTL", "24h"))
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
	}

	origins := defaultCORSOrigins
	if raw := get("CORS_ALLOWED_ORIGINS", ""); raw != "" {
		origins = nil
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	migrate, _ := strconv.ParseBool(get("MIGRATE_ON_START", "false"))

	return Env{
		AppAddr:            get("APP_ADDR", ":8080"),
		GinMode:            get("GIN_MODE", ""),
		DBHost:             get("DB_HOST", "127.0.0.1:3306"),
		DBUser:             get("DB_USER", "root"),
		DBPassword:         get("DB_PASSWORD", ""),
		DBName:             get("DB_NAME", "org_chart"),
		DBMaxOpenConns:     getInt("DB_MAX_OPEN_CONNS", 25),
		JWTSecret:          get("JWT_SECRET", ""),
		JWTIssuer:          get("JWT_ISSUER", "org-chart"),
		JWTTTL:             ttl,
		CORSAllowedOrigins: origins,
		LogLevel:           get("LOG_LEVEL", "info"),
		LogFormat:          get("LOG_FORMAT", "console"),
		AuthRatePerMinute:  getInt("AUTH_RATE_PER_MINUTE", 30),
		MigrateOnStart:     migrate,
	}
}

// MinJWTSecretLen is the shortest JWT_SECRET accepted outside debug and
// test mode.
const MinJWTSecretLen = 32

// CheckJWTSecret refuses an unset or short signing secret. debug and test
// gin modes only require it to be non-empty.
func (e Env) CheckJWTSecret() error {
	if e.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	switch e.GinMode {
	case "debug", "test":
		return nil
	}
	if len(e.JWTSecret) < MinJWTSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes, got %d", MinJWTSecretLen, len(e.JWTSecret))
	}
	return nil
}

// DSN builds the MySQL connection string.
func (e Env) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = e.DBUser
	cfg.Passwd = e.DBPassword
	cfg.Net = "tcp"
	cfg.Addr = e.DBHost
	cfg.DBName = e.DBName
	cfg.ParseTime = true
	cfg.MultiStatements = true
	cfg.Timeout = 5 * time.Second
	cfg.ReadTimeout = 30 * time.Second
	cfg.WriteTimeout = 30 * time.Second
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}
