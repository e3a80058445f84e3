package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devanpat/milvago/internal/application/handlers"
)

func newExistsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists [name]",
		Short: "Check whether a collection exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExists(cmd, args[0])
		},
	}
}

func runExists(cmd *cobra.Command, name string) error {
	ctx := cmd.Context()

	return withHandler(ctx, func(h *handlers.CollectionHandler) error {
		exists, err := h.Exists(ctx, name)
		if err != nil {
			return err
		}

		if exists {
			fmt.Printf("Collection %s exists.\n", name)
		} else {
			fmt.Printf("Collection %s does not exist.\n", name)
		}
		return nil
	})
}
