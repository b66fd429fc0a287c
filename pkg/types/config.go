// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

const (
	// DefaultInputFile is the Takeout activity export read when no input is given.
	DefaultInputFile = "MyActivity.json"

	// DefaultOutputFile is split into base and extension to name the output sequence.
	DefaultOutputFile = "Gemini_History.md"

	// DefaultLimit is the byte budget of one output file.
	DefaultLimit int64 = 1500000

	// DefaultCategory is the header substring selecting relevant records.
	DefaultCategory = "Gemini"

	// WatermarkFile is the relative path of the persisted high-watermark.
	WatermarkFile = "last_entry_time.txt"
)

// ExportConfig holds settings for one export run.
type ExportConfig struct {
	// InputFile is the path of the activity export JSON.
	InputFile string `json:"input_file" yaml:"input_file" mapstructure:"input_file"`

	// OutputFile is the base name of the output sequence; "-NN" is inserted
	// before its extension.
	OutputFile string `json:"output_file" yaml:"output_file" mapstructure:"output_file"`

	// Limit is the byte budget per output file.
	Limit int64 `json:"limit" yaml:"limit" mapstructure:"limit"`

	// Category is the header marker (substring, case-sensitive).
	Category string `json:"category" yaml:"category" mapstructure:"category"`

	// Assistant names the responder in section headings. Defaults to Category.
	Assistant string `json:"assistant,omitempty" yaml:"assistant,omitempty" mapstructure:"assistant"`

	// WatermarkFile is the path of the persisted watermark.
	WatermarkFile string `json:"watermark_file" yaml:"watermark_file" mapstructure:"watermark_file"`

	// Ledger is an optional sqlite database path recording each run.
	Ledger string `json:"ledger,omitempty" yaml:"ledger,omitempty" mapstructure:"ledger"`

	// Lang forces a message catalog locale; empty means detect.
	Lang string `json:"lang,omitempty" yaml:"lang,omitempty" mapstructure:"lang"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c ExportConfig) WithDefaults() ExportConfig {
	if c.InputFile == "" {
		c.InputFile = DefaultInputFile
	}
	if c.OutputFile == "" {
		c.OutputFile = DefaultOutputFile
	}
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.Category == "" {
		c.Category = DefaultCategory
	}
	if c.Assistant == "" {
		c.Assistant = c.Category
	}
	if c.WatermarkFile == "" {
		c.WatermarkFile = WatermarkFile
	}
	return c
}

// Title returns the first line written to every newly created output file.
func (c ExportConfig) Title() string {
	return fmt.Sprintf("# %s Chat History Archive", c.Category)
}
