package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devanpat/milvago/client"
	"github.com/devanpat/milvago/internal/application/handlers"
	"github.com/devanpat/milvago/internal/infrastructure/parsers"
)

type createFlags struct {
	description string
	schemaFile  string
	shards      int32
	consistency string
}

func newCreateCmd() *cobra.Command {
	var flags createFlags

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a collection",
		Long:  "Creates a collection from a YAML schema definition file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.schemaFile, "schema", "s", "", "Path to the YAML schema definition (required)")
	cmd.Flags().StringVarP(&flags.description, "description", "d", "", "Collection description")
	cmd.Flags().Int32Var(&flags.shards, "shards", 2, "Number of shards")
	cmd.Flags().StringVarP(&flags.consistency, "consistency", "c", "bounded", "Consistency level (strong, session, bounded, eventually, customized)")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func runCreate(cmd *cobra.Command, name string, flags createFlags) error {
	ctx := cmd.Context()

	level, err := parseConsistency(flags.consistency)
	if err != nil {
		return err
	}

	sch, err := parsers.LoadSchemaFile(flags.schemaFile)
	if err != nil {
		return err
	}

	return withHandler(ctx, func(h *handlers.CollectionHandler) error {
		result, err := h.Create(ctx, handlers.CreateParams{
			Name:        name,
			Description: flags.description,
			Schema:      sch,
			Shards:      flags.shards,
			Consistency: level,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Collection %s created.\n", result.Name)
		return nil
	})
}

// parseConsistency maps a flag value to a consistency level.
func parseConsistency(s string) (client.ConsistencyLevel, error) {
	switch strings.ToLower(s) {
	case "strong":
		return client.ConsistencyStrong, nil
	case "session":
		return client.ConsistencySession, nil
	case "bounded":
		return client.ConsistencyBounded, nil
	case "eventually":
		return client.ConsistencyEventually, nil
	case "customized":
		return client.ConsistencyCustomized, nil
	default:
		return 0, fmt.Errorf("unknown consistency level: %s", s)
	}
}
