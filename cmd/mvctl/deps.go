package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/devanpat/milvago/client"
	"github.com/devanpat/milvago/internal/application/handlers"
	"github.com/devanpat/milvago/internal/infrastructure/config"
)

// withHandler loads config, connects a client and hands a collection handler
// to fn. The connection is closed when fn returns.
func withHandler(ctx context.Context, fn func(*handlers.CollectionHandler) error) error {
	// env files are optional
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	endpoint := cfg.Milvus.Endpoint
	if globalEndpoint != "" {
		endpoint = globalEndpoint
	}

	dialCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Milvus.TimeoutSeconds)*time.Second)
	defer cancel()

	c, err := client.Connect(dialCtx, endpoint)
	if err != nil {
		return fmt.Errorf("connecting to milvus: %w", err)
	}
	defer func() { _ = c.Close() }()

	return fn(handlers.NewCollectionHandler(c))
}
