// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chat-archive/internal/watermark"
	"github.com/pdiddy/chat-archive/pkg/types"
)

// Write renders runs to w as "table", "yaml", or "json".
func Write(w io.Writer, runs []types.RunSummary, format string) error {
	switch format {
	case "table", "":
		return writeTable(w, runs)
	case "yaml":
		data, err := yaml.Marshal(runs)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := sonic.ConfigStd.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use table, yaml, or json", format)
	}
}

func writeTable(w io.Writer, runs []types.RunSummary) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}

	fmt.Fprintf(w, "%-8s  %-19s  %7s  %7s  %8s  %5s  %s\n",
		"Run", "Started", "Total", "Matched", "Exported", "Files", "Watermark")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range runs {
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		mark := "unchanged"
		if r.Advanced() {
			mark = watermark.Format(r.WatermarkAfter)
		}
		fmt.Fprintf(w, "%-8s  %-19s  %7d  %7d  %8d  %5d  %s\n",
			id, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Total, r.Matched, r.Exported, r.Files, mark)
	}

	_, err := fmt.Fprintf(w, "\n%d runs\n", len(runs))
	return err
}
