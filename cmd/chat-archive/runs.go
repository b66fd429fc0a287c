// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chat-archive/internal/ledger"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded export runs",
	Long: `Runs lists the export runs recorded in the run ledger, newest first.
The ledger is written only when --ledger (or ledger in chat-archive.yaml)
names a database.`,
	RunE: runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	path := viper.GetString("ledger")
	if path == "" {
		return fmt.Errorf("no run ledger configured: pass --ledger or set ledger in chat-archive.yaml")
	}
	format, _ := cmd.Flags().GetString("format")
	limit, _ := cmd.Flags().GetInt("limit")

	l, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer l.Close()

	runs, err := l.List(context.Background(), limit)
	if err != nil {
		return err
	}
	return ledger.Write(cmd.OutOrStdout(), runs, format)
}

func init() {
	runsCmd.Flags().String("format", "table", "output format: table, yaml, or json")
	runsCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(runsCmd)
}
