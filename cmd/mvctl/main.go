// Package main provides the entry point for the mvctl CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version        = "0.1.0-dev"
	globalEndpoint string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "mvctl",
		Short:   "Administer collections on a Milvus vector database",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalEndpoint, "endpoint", "e", "", "Milvus endpoint (overrides config)")

	rootCmd.AddCommand(
		newInitCmd(),
		newCreateCmd(),
		newDropCmd(),
		newExistsCmd(),
		newGetCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
