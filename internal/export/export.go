// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export runs the incremental transcript export: it loads an
// activity export, keeps the records of one product, renders every record
// newer than the watermark as Markdown, packs the sections into size-bounded
// files, and advances the watermark.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pdiddy/chat-archive/internal/activity"
	"github.com/pdiddy/chat-archive/internal/chunk"
	"github.com/pdiddy/chat-archive/internal/normalize"
	"github.com/pdiddy/chat-archive/internal/watermark"
	"github.com/pdiddy/chat-archive/pkg/types"
)

// Messages formats localized progress lines.
type Messages interface {
	T(key string, args ...any) string
}

// Recorder stores completed runs. *ledger.Ledger implements it.
type Recorder interface {
	Record(ctx context.Context, run types.RunSummary) (types.RunSummary, error)
}

// Pipeline holds the collaborators of an export run.
type Pipeline struct {
	cfg  types.ExportConfig
	msgs Messages
	out  io.Writer

	// Warn receives non-fatal problems. Defaults to stderr.
	Warn io.Writer

	// Recorder, when set, receives the summary of every run that read records.
	Recorder Recorder

	// Now returns the current time; tests replace it.
	Now func() time.Time
}

// New returns a Pipeline for cfg, printing progress to out.
func New(cfg types.ExportConfig, msgs Messages, out io.Writer) *Pipeline {
	return &Pipeline{
		cfg:  cfg.WithDefaults(),
		msgs: msgs,
		out:  out,
		Warn: os.Stderr,
		Now:  time.Now,
	}
}

// Config returns the effective configuration.
func (p *Pipeline) Config() types.ExportConfig {
	return p.cfg
}

// Run performs one export. Loading problems end the run early with an empty
// summary and no error. Write failures and cancellation are returned; in both
// cases the watermark covers exactly the sections already on disk.
func (p *Pipeline) Run(ctx context.Context) (types.RunSummary, error) {
	summary := types.RunSummary{
		StartedAt: p.Now(),
		InputFile: p.cfg.InputFile,
	}

	p.say("start_processing", p.cfg.InputFile)

	records := activity.Load(p.cfg.InputFile, p.msgs, p.out)
	if len(records) == 0 {
		return summary, nil
	}

	matched := activity.Filter(records, p.cfg.Category)
	summary.Total = len(records)
	summary.Matched = len(matched)
	p.say("extracted_entries", summary.Total, summary.Matched)
	p.say("converting_markdown")

	store := watermark.NewStore(p.cfg.WatermarkFile)
	before := store.Load()
	summary.WatermarkBefore = before
	summary.WatermarkAfter = before

	writer, err := chunk.NewWriter(chunk.NewNamer(p.cfg.OutputFile), p.header(summary.StartedAt), p.cfg.Limit)
	if err != nil {
		return summary, err
	}
	writer.OnFlush = func(fw chunk.FileWrite) {
		if fw.Newest.After(summary.WatermarkAfter) {
			summary.WatermarkAfter = fw.Newest
		}
		if fw.Appended {
			p.say("appended_to_file", fw.Name)
		} else {
			p.say("written_to_file", fw.Name)
		}
	}

	// A canceled run stops taking records but still flushes what it queued
	// and saves the watermark of everything on disk.
	n := normalize.New(p.cfg.Assistant)
	for _, rec := range activity.Chronological(matched) {
		if ctx.Err() != nil {
			break
		}
		sec := n.Normalize(rec, before)
		if sec.IsEmpty() {
			continue
		}
		if err := writer.Add(sec); err != nil {
			return summary, p.saveFlushed(store, summary, err)
		}
		summary.Exported++
	}
	if err := writer.Close(); err != nil {
		return summary, p.saveFlushed(store, summary, err)
	}
	summary.Files = writer.Cursor().Index

	if summary.Advanced() {
		if err := store.Save(summary.WatermarkAfter); err != nil {
			return summary, err
		}
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}
	summary.FinishedAt = p.Now()

	p.say("processing_complete",
		watermark.Format(summary.WatermarkBefore),
		watermark.Format(summary.WatermarkAfter),
		summary.Files)

	if p.Recorder != nil {
		recorded, err := p.Recorder.Record(ctx, summary)
		if err != nil {
			fmt.Fprintf(p.Warn, "warning: run ledger write failed: %v\n", err)
		} else {
			summary = recorded
		}
	}

	return summary, nil
}

// saveFlushed persists the watermark of the files written before cause
// stopped the run, and returns cause.
func (p *Pipeline) saveFlushed(store *watermark.Store, summary types.RunSummary, cause error) error {
	if !summary.Advanced() {
		return cause
	}
	if err := store.Save(summary.WatermarkAfter); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

// header is written at the top of every newly created output file.
func (p *Pipeline) header(now time.Time) string {
	return fmt.Sprintf("%s\n\nGenerated at: %s\n\n", p.cfg.Title(), now.Format("2006-01-02 15:04:05"))
}

func (p *Pipeline) say(key string, args ...any) {
	fmt.Fprintln(p.out, p.msgs.T(key, args...))
}
