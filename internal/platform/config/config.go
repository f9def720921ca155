package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr                string
	LogLevel            string
	SeedBootstrapPerson bool
	RequestTimeout      time.Duration
	ShutdownTimeout     time.Duration
}

const (
	defaultPort            = "3000"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
//
// PORT selects the listening port on all interfaces; PEOPLE_REGISTRY_ADDR
// overrides the full host:port when set.
func FromEnv() Server {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Server {
	addr := getenv("PEOPLE_REGISTRY_ADDR")
	if addr == "" {
		port := getenv("PORT")
		if port == "" {
			port = defaultPort
		}
		addr = net.JoinHostPort("0.0.0.0", port)
	}

	logLevel := getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	seed, _ := strconv.ParseBool(getenv("SEED_BOOTSTRAP_PERSON"))

	return Server{
		Addr:                addr,
		LogLevel:            logLevel,
		SeedBootstrapPerson: seed,
		RequestTimeout:      durationOr(getenv("REQUEST_TIMEOUT"), defaultRequestTimeout),
		ShutdownTimeout:     durationOr(getenv("SHUTDOWN_TIMEOUT"), defaultShutdownTimeout),
	}
}

func durationOr(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
