// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chat-archive CLI, which turns a
// Google Takeout "My Activity" export into size-bounded Markdown transcripts.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chat-archive/internal/i18n"
	"github.com/pdiddy/chat-archive/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// messages is the catalog selected for the user's locale at startup.
var messages = i18n.New(i18n.Fallback)

// rootCmd is the base command for the chat-archive CLI.
var rootCmd = &cobra.Command{
	Use:   "chat-archive",
	Short: "Archive Takeout chat activity as Markdown",
	Long: `chat-archive converts the chat activity found in a Google Takeout
"My Activity" export into Markdown transcripts split across numbered files
of bounded size, ready for note-taking and retrieval tools.

Runs are incremental: the timestamp of the newest exported record is kept in
last_entry_time.txt, and later runs append only newer records.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		messages = selectCatalog()
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./chat-archive.yaml or ~/.config/chat-archive/config.yaml)")
	rootCmd.PersistentFlags().String("lang", "", "message language (default: detected from LC_ALL, LC_MESSAGES, LANG)")
	rootCmd.PersistentFlags().String("ledger", "", "sqlite database recording each export run (disabled when empty)")

	_ = viper.BindPFlag("lang", rootCmd.PersistentFlags().Lookup("lang"))
	_ = viper.BindPFlag("ledger", rootCmd.PersistentFlags().Lookup("ledger"))

	viper.SetDefault("input_file", types.DefaultInputFile)
	viper.SetDefault("output_file", types.DefaultOutputFile)
	viper.SetDefault("limit", types.DefaultLimit)
	viper.SetDefault("category", types.DefaultCategory)
	viper.SetDefault("watermark_file", types.WatermarkFile)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chat-archive")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "chat-archive"))
		}
	}

	viper.SetEnvPrefix("CHAT_ARCHIVE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// selectCatalog honours --lang, then the process locale.
func selectCatalog() *i18n.Catalog {
	if lang := viper.GetString("lang"); lang != "" {
		return i18n.New(lang)
	}
	key, err := i18n.Detect(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, i18n.New(i18n.Fallback).T("error_lang_detection", err))
	}
	return i18n.New(key)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
