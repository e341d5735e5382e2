package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clusterlens/esadmin"
)

func init() {
	indicesCmd := &cobra.Command{
		Use:   "indices",
		Short: "List indices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRead(cmd.Context(), esadmin.CatIndices{})
		},
	}

	indexCmd := &cobra.Command{Use: "index", Short: "Index operations"}

	var shards, replicas int
	createCmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := esadmin.CreateIndex{
				Index: args[0],
				Body: map[string]any{
					"settings": map[string]any{
						"number_of_shards":   shards,
						"number_of_replicas": replicas,
					},
				},
			}
			return runMutation(cmd.Context(), op, "", "Index created")
		},
	}
	createCmd.Flags().IntVar(&shards, "shards", 1, "Number of primary shards")
	createCmd.Flags().IntVar(&replicas, "replicas", 0, "Number of replicas")

	deleteCmd := &cobra.Command{
		Use:   "delete NAME...",
		Short: "Delete one or more indices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := fmt.Sprintf("Delete %s? This cannot be undone.", strings.Join(args, ", "))
			return runMutation(cmd.Context(), esadmin.DeleteIndices{Indices: args}, msg, "Index deleted")
		},
	}

	openCmd := &cobra.Command{
		Use:   "open NAME...",
		Short: "Open one or more indices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd.Context(), esadmin.OpenIndices{Indices: args}, "", "Index opened")
		},
	}

	closeCmd := &cobra.Command{
		Use:   "close NAME...",
		Short: "Close one or more indices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := fmt.Sprintf("Close %s? Closed indices stop serving requests.", strings.Join(args, ", "))
			return runMutation(cmd.Context(), esadmin.CloseIndices{Indices: args}, msg, "Index closed")
		},
	}

	refreshCmd := &cobra.Command{
		Use:   "refresh NAME",
		Short: "Refresh an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd.Context(), esadmin.RefreshIndex{Index: args[0]}, "", "Index refreshed")
		},
	}

	flushCmd := &cobra.Command{
		Use:   "flush NAME",
		Short: "Flush an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd.Context(), esadmin.FlushIndex{Index: args[0]}, "", "Index flushed")
		},
	}

	forcemergeCmd := &cobra.Command{
		Use:   "forcemerge NAME",
		Short: "Force-merge the segments of an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd.Context(), esadmin.ForcemergeIndex{Index: args[0]}, "", "Forcemerge started")
		},
	}

	clearCacheCmd := &cobra.Command{
		Use:   "clear-cache NAME",
		Short: "Clear the caches of an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd.Context(), esadmin.ClearCache{Index: args[0]}, "", "Cache cleared")
		},
	}

	getCmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Show settings and mappings of an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd.Context(), esadmin.GetIndex{Index: args[0]})
		},
	}

	mappingCmd := &cobra.Command{
		Use:   "mapping NAME",
		Short: "Show the mapping of an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd.Context(), esadmin.GetMapping{Index: args[0]})
		},
	}

	indexCmd.AddCommand(createCmd, deleteCmd, openCmd, closeCmd, refreshCmd, flushCmd, forcemergeCmd, clearCacheCmd, getCmd, mappingCmd)
	rootCmd.AddCommand(indicesCmd, indexCmd)
}

func init() {
	aliasesCmd := &cobra.Command{
		Use:   "aliases",
		Short: "List aliases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRead(cmd.Context(), esadmin.CatAliases{})
		},
	}

	aliasCmd := &cobra.Command{Use: "alias", Short: "Alias operations"}

	putCmd := &cobra.Command{
		Use:   "put INDEX ALIAS",
		Short: "Point an alias at an index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutation(cmd.Context(), esadmin.PutAlias{Index: args[0], Alias: args[1]}, "", "Alias created")
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm INDEX ALIAS",
		Short: "Remove an alias from an index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := fmt.Sprintf("Remove alias %q from %q?", args[1], args[0])
			return runMutation(cmd.Context(), esadmin.DeleteAlias{Index: args[0], Alias: args[1]}, msg, "Alias removed")
		},
	}

	aliasCmd.AddCommand(putCmd, rmCmd)
	rootCmd.AddCommand(aliasesCmd, aliasCmd)
}
