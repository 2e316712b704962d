package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	PoWDifficulty uint32
	SolveTimeout  time.Duration
	LogLevel      string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atou32(s string, def uint32) uint32 {
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(n)
	}
	return def
}

func Parse() Config {
	timeout, _ := time.ParseDuration(getenv("SOLVE_TIMEOUT", "0s"))
	return Config{
		PoWDifficulty: atou32(getenv("POW_DIFFICULTY", "50"), 50),
		SolveTimeout:  timeout,
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}
