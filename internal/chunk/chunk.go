// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package chunk packs rendered sections into a numbered sequence of
// size-bounded output files (name-01.md, name-02.md, ...).
//
// A run resumes the last existing file in append mode and only moves to the
// next index when the current file would exceed its byte budget. Earlier
// indices are never revisited within a run.
package chunk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/chat-archive/pkg/types"
)

// Namer derives numbered file names from an output path by inserting a
// two-digit index before the extension.
type Namer struct {
	Base string
	Ext  string
}

// NewNamer splits output into base and extension.
func NewNamer(output string) Namer {
	ext := filepath.Ext(output)
	if ext == filepath.Base(output) {
		// Dotfile without a further extension, e.g. ".history".
		ext = ""
	}
	return Namer{Base: strings.TrimSuffix(output, ext), Ext: ext}
}

// Name returns the file name for index idx (1-based).
func (n Namer) Name(idx int) string {
	return fmt.Sprintf("%s-%02d%s", n.Base, idx, n.Ext)
}

// Cursor is the file the writer currently targets and how it opens it.
type Cursor struct {
	Index  int
	Append bool
}

// Next returns the cursor of the following file, opened in create mode.
func (c Cursor) Next() Cursor {
	return Cursor{Index: c.Index + 1}
}

// Resume scans name-01, name-02, ... and returns a cursor on the last
// existing file in append mode together with its size. With no existing
// file it returns index 1 in create mode.
func Resume(n Namer) (Cursor, int64, error) {
	last := 0
	var size int64
	for idx := 1; ; idx++ {
		info, err := os.Stat(n.Name(idx))
		if errors.Is(err, os.ErrNotExist) {
			break
		}
		if err != nil {
			return Cursor{}, 0, fmt.Errorf("checking %s: %w", n.Name(idx), err)
		}
		last = idx
		size = info.Size()
	}
	if last == 0 {
		return Cursor{Index: 1}, 0, nil
	}
	return Cursor{Index: last, Append: true}, size, nil
}

// FileWrite describes one flush of queued sections to a file.
type FileWrite struct {
	Name     string
	Appended bool
	Sections int
	Bytes    int64

	// Newest is the latest section time in this flush. Sections with an
	// unparseable time carry the zero time and never raise it.
	Newest time.Time
}

// Writer accumulates sections and flushes them to the output sequence.
// It is not safe for concurrent use.
type Writer struct {
	namer  Namer
	header string
	limit  int64

	cursor   Cursor
	size     int64
	occupied bool
	pending  []types.Section

	// OnFlush, when set, is called after every successful flush.
	OnFlush func(FileWrite)
}

// NewWriter returns a Writer for the sequence named by namer, writing header
// at the top of every file it creates, with at most limit bytes per file.
func NewWriter(namer Namer, header string, limit int64) (*Writer, error) {
	cursor, existing, err := Resume(namer)
	if err != nil {
		return nil, err
	}
	return &Writer{
		namer:    namer,
		header:   header,
		limit:    limit,
		cursor:   cursor,
		size:     int64(len(header)) + existing,
		occupied: existing > 0,
	}, nil
}

// Cursor returns the file the writer currently targets.
func (w *Writer) Cursor() Cursor {
	return w.cursor
}

// Add queues one section. When the section would push the current file over
// the limit and that file already holds content, the queued sections are
// flushed and the writer moves to the next index. A section larger than the
// limit on its own still goes into a file by itself.
func (w *Writer) Add(section types.Section) error {
	if section.IsEmpty() {
		return nil
	}
	n := section.Size()
	if w.size+n > w.limit && (len(w.pending) > 0 || w.occupied) {
		if err := w.flush(); err != nil {
			return err
		}
		w.cursor = w.cursor.Next()
		w.size = int64(len(w.header))
		w.occupied = false
	}
	w.pending = append(w.pending, section)
	w.size += n
	return nil
}

// Close flushes any queued sections.
func (w *Writer) Close() error {
	return w.flush()
}

func (w *Writer) flush() error {
	if len(w.pending) == 0 {
		return nil
	}
	name := w.namer.Name(w.cursor.Index)
	written, err := writeFile(name, w.cursor, w.header, w.pending)
	if err != nil {
		return err
	}
	fw := FileWrite{
		Name:     name,
		Appended: w.cursor.Append,
		Sections: len(w.pending),
		Bytes:    written,
	}
	for _, s := range w.pending {
		if s.Time.After(fw.Newest) {
			fw.Newest = s.Time
		}
	}
	w.pending = nil
	w.occupied = true
	w.cursor.Append = true
	if w.OnFlush != nil {
		w.OnFlush(fw)
	}
	return nil
}

// writeFile opens name per cursor mode, writes the header when creating,
// then the sections, and closes the file. It returns the bytes written.
func writeFile(name string, c Cursor, header string, sections []types.Section) (n int64, err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if c.Append {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := os.OpenFile(name, flags, 0o644)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", name, cerr)
		}
	}()

	if !c.Append {
		k, err := f.WriteString(header)
		n += int64(k)
		if err != nil {
			return n, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	for _, s := range sections {
		k, err := f.WriteString(s.Text)
		n += int64(k)
		if err != nil {
			return n, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return n, nil
}
