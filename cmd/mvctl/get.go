package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devanpat/milvago/internal/application/handlers"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [name]",
		Short: "Look up a collection",
		Long:  "Looks up a collection by name. The lookup reflects the server state at the time of the call only.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args[0])
		},
	}
}

func runGet(cmd *cobra.Command, name string) error {
	ctx := cmd.Context()

	return withHandler(ctx, func(h *handlers.CollectionHandler) error {
		result, err := h.Get(ctx, name)
		if err != nil {
			return err
		}

		if !result.Found {
			fmt.Printf("Collection %s not found.\n", name)
			return nil
		}

		fmt.Printf("Collection: %s\n", result.Name)
		return nil
	})
}
