package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	PostgresSSLMode  string

	Port               string
	OperatorWorkers    int
	LogLevel           logrus.Level
	CORSAllowedOrigins []string
	RunMigrations      bool
}

// ProcessEnvironmentVariables builds the Config from the environment. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win over it.
func ProcessEnvironmentVariables() (*Config, error) {
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:    "localhost",
		PostgresPort:       "5433",
		PostgresDB:         "postgres",
		PostgresUsername:   "postgres",
		PostgresPassword:   "testpassword",
		PostgresSSLMode:    "disable",
		Port:               "8080",
		OperatorWorkers:    4,
		LogLevel:           logrus.InfoLevel,
		CORSAllowedOrigins: []string{"*"},
		RunMigrations:      true,
	}

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.PostgresSSLMode, "POSTGRES_SSLMODE")
	setString(&env.Port, "PORT")

	if raw := os.Getenv("OPERATOR_WORKERS"); len(raw) != 0 {
		workers, err := strconv.Atoi(raw)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("OPERATOR_WORKERS must be a positive integer, got %q", raw)
		}
		env.OperatorWorkers = workers
	}

	if raw := os.Getenv("LOG_LEVEL"); len(raw) != 0 {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		env.LogLevel = level
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); len(raw) != 0 {
		env.CORSAllowedOrigins = nil
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, origin)
			}
		}
	}

	if raw := os.Getenv("RUN_MIGRATIONS"); len(raw) != 0 {
		run, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("RUN_MIGRATIONS: %w", err)
		}
		env.RunMigrations = run
	}

	return &env, nil
}

// PostgresConnectionString returns the lib/pq URL for the configured database.
func (c *Config) PostgresConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=" + url.QueryEscape(c.PostgresSSLMode),
	}
	return u.String()
}

func setString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}
