package config

import (
	"fmt"
	"os"
	"strconv"
)

type ServerConfig struct {
	Port           string
	WorkerPoolSize int
}

func GetServerConfig() (*ServerConfig, error) {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	poolSize := 120
	if raw := os.Getenv("WORKER_POOL_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("failed to parse WORKER_POOL_SIZE")
		}
		poolSize = parsed
	}
	return &ServerConfig{
		Port:           port,
		WorkerPoolSize: poolSize,
	}, nil
}
