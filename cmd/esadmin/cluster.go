package main

import (
	"github.com/spf13/cobra"

	"github.com/clusterlens/esadmin"
)

func init() {
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show the engine banner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRead(cmd.Context(), esadmin.ClusterInfo{})
		},
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Show cluster health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRead(cmd.Context(), esadmin.ClusterHealth{})
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cluster statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRead(cmd.Context(), esadmin.ClusterStats{})
		},
	}

	var includeDefaults bool
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show cluster settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRead(cmd.Context(), esadmin.ClusterSettings{IncludeDefaults: includeDefaults})
		},
	}
	settingsCmd.Flags().BoolVar(&includeDefaults, "defaults", false, "Include default settings")

	shardsCmd := &cobra.Command{
		Use:   "shards",
		Short: "List shard allocation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRead(cmd.Context(), esadmin.CatShards{})
		},
	}

	rootCmd.AddCommand(infoCmd, healthCmd, statsCmd, settingsCmd, shardsCmd)
}
