package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clusterlens/esadmin"
	"github.com/clusterlens/esadmin/internal/jsonutil"
)

func init() {
	var index, queryText, rawQuery string
	var size int
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Run a search query",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := map[string]any{"size": size}
			switch {
			case rawQuery != "":
				parsed, ok := jsonutil.Parse(rawQuery).(map[string]any)
				if !ok {
					return fmt.Errorf("--body must be a JSON object")
				}
				query = parsed
			case queryText != "":
				query["query"] = map[string]any{
					"query_string": map[string]any{"query": queryText},
				}
			}
			return runRead(cmd.Context(), esadmin.Search{Index: index, Query: query})
		},
	}
	searchCmd.Flags().StringVarP(&index, "index", "i", "", "Index to search (all when empty)")
	searchCmd.Flags().StringVarP(&queryText, "query", "q", "", "Query string")
	searchCmd.Flags().StringVarP(&rawQuery, "body", "b", "", "Raw query body JSON (overrides --query)")
	searchCmd.Flags().IntVarP(&size, "size", "n", 10, "Number of hits to return")

	docCmd := &cobra.Command{Use: "doc", Short: "Document operations"}

	docGetCmd := &cobra.Command{
		Use:   "get INDEX ID",
		Short: "Fetch a document by ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd.Context(), esadmin.GetDocument{Index: args[0], ID: args[1]})
		},
	}

	docRmCmd := &cobra.Command{
		Use:   "rm INDEX ID",
		Short: "Delete a document by ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := fmt.Sprintf("Delete document %q from %q?", args[1], args[0])
			return runMutation(cmd.Context(), esadmin.DeleteDocument{Index: args[0], ID: args[1]}, msg, "Document deleted")
		},
	}

	docCmd.AddCommand(docGetCmd, docRmCmd)
	rootCmd.AddCommand(searchCmd, docCmd)
}
