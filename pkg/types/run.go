// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunSummary holds the counts reported at the end of an export run.
type RunSummary struct {
	// ID identifies the run in the ledger.
	ID string `json:"id" yaml:"id"`

	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`

	// InputFile is the export the run read.
	InputFile string `json:"input_file" yaml:"input_file"`

	// Total is the number of records in the input.
	Total int `json:"total" yaml:"total"`

	// Matched is the number of records whose header carried the category.
	Matched int `json:"matched" yaml:"matched"`

	// Exported is the number of sections written.
	Exported int `json:"exported" yaml:"exported"`

	// Files is the index of the last file in the output sequence.
	Files int `json:"files" yaml:"files"`

	// WatermarkBefore is the watermark loaded at the start of the run.
	WatermarkBefore time.Time `json:"watermark_before" yaml:"watermark_before"`

	// WatermarkAfter is the newest exported timestamp, or WatermarkBefore
	// when nothing newer was exported.
	WatermarkAfter time.Time `json:"watermark_after" yaml:"watermark_after"`
}

// Advanced reports whether the run moved the watermark forward.
func (r RunSummary) Advanced() bool {
	return r.WatermarkAfter.After(r.WatermarkBefore)
}
