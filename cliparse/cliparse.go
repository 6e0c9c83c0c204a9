package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	Collection    string
	TarantoolUser string
	TarantoolPass string

	// AllowedOrigins lists CORS origins; empty allows any origin
	AllowedOrigins []string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// A missing .env is fine; real environment variables still apply
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Error loading .env file", "error", err)
	}

	fs := flag.NewFlagSet("quickpoll", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (tarantool: host:port)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or tarantool)")
	fs.StringVar(&cfg.Collection, "c", "", "Collection holding poll documents")
	origins := fs.String("o", "", "Comma-separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8090 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	switch cfg.DatabaseType {
	case "sqlite", "postgres", "tarantool":
	default:
		return Config{}, errors.New("DATABASE_TYPE must be sqlite, postgres or tarantool")
	}

	if cfg.Collection == "" {
		cfg.Collection = os.Getenv("POLLS_COLLECTION")
		if cfg.Collection == "" {
			cfg.Collection = "polls"
		}
	}

	if *origins == "" {
		*origins = os.Getenv("CORS_ORIGINS")
	}
	for _, o := range strings.Split(*origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	cfg.TarantoolUser = os.Getenv("TARANTOOL_USER")
	cfg.TarantoolPass = os.Getenv("TARANTOOL_PASS")

	return cfg, nil
}
