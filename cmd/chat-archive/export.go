// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chat-archive/internal/export"
	"github.com/pdiddy/chat-archive/internal/ledger"
	"github.com/pdiddy/chat-archive/internal/watch"
	"github.com/pdiddy/chat-archive/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert new chat activity into Markdown files",
	Long: `Export reads the Takeout activity export, keeps the records whose header
contains the category (default "Gemini"), and appends every record newer
than the saved watermark to Gemini_History-NN.md, starting a new numbered
file whenever the size limit would be exceeded.

With --watch the export re-runs each time the input file changes.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var cfg types.ExportConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintln(out, messages.T("error_occurred", fmt.Errorf("reading configuration: %w", err)))
		return nil
	}

	p := export.New(cfg, messages, out)
	if cfg.Ledger != "" {
		l, err := ledger.Open(cfg.Ledger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: run ledger disabled: %v\n", err)
		} else {
			defer l.Close()
			p.Recorder = l
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOnce := func(ctx context.Context) {
		if _, err := p.Run(ctx); err != nil {
			fmt.Fprintln(out, messages.T("error_occurred", err))
		}
	}
	runOnce(ctx)

	watching, _ := cmd.Flags().GetBool("watch")
	if !watching {
		return nil
	}
	return watchInput(ctx, p.Config().InputFile, out, runOnce)
}

func watchInput(ctx context.Context, path string, out io.Writer, action func(context.Context)) error {
	w, err := watch.New(path, watch.DefaultDebounce)
	if err != nil {
		fmt.Fprintln(out, messages.T("error_occurred", err))
		return nil
	}
	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl-C to stop)\n", path)
	return w.Run(ctx, action)
}

func init() {
	exportCmd.Flags().String("input_file", types.DefaultInputFile, "path to the input JSON file")
	exportCmd.Flags().String("output_file", types.DefaultOutputFile, "path to the output Markdown file; -NN is inserted before the extension")
	exportCmd.Flags().Int64("limit", types.DefaultLimit, "split file size limit in bytes")
	exportCmd.Flags().String("category", types.DefaultCategory, "header marker selecting the records to export")
	exportCmd.Flags().Bool("watch", false, "re-run the export whenever the input file changes")

	for _, name := range []string{"input_file", "output_file", "limit", "category"} {
		_ = viper.BindPFlag(name, exportCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(exportCmd)
}
