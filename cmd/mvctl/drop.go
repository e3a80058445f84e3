package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devanpat/milvago/internal/application/handlers"
)

type dropFlags struct {
	force bool
}

func newDropCmd() *cobra.Command {
	var flags dropFlags

	cmd := &cobra.Command{
		Use:   "drop [name]",
		Short: "Drop a collection",
		Long:  "Drops a collection and all of its data on the server.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrop(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runDrop(cmd *cobra.Command, name string, flags dropFlags) error {
	ctx := cmd.Context()

	if !flags.force {
		prompt := fmt.Sprintf("Drop collection %s and all of its data? [y/N]: ", name)
		if !confirmAction(prompt) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	return withHandler(ctx, func(h *handlers.CollectionHandler) error {
		if err := h.Drop(ctx, name); err != nil {
			return err
		}

		fmt.Printf("Collection %s dropped.\n", name)
		return nil
	})
}

// confirmAction prompts for a yes/no answer on stdin.
func confirmAction(prompt string) bool {
	fmt.Print(prompt)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
