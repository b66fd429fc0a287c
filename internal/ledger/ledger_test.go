// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chat-archive/pkg/types"
)

func openLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "state", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func sampleRun(day int) types.RunSummary {
	start := time.Date(2025, 1, day, 10, 0, 0, 0, time.UTC)
	return types.RunSummary{
		StartedAt:       start,
		FinishedAt:      start.Add(2 * time.Second),
		InputFile:       "MyActivity.json",
		Total:           10,
		Matched:         6,
		Exported:        day,
		Files:           1,
		WatermarkBefore: time.Time{},
		WatermarkAfter:  start.Add(-time.Hour),
	}
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	l := openLedger(t)

	first, err := l.Record(ctx, sampleRun(1))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID, "record assigns an ID")

	second := sampleRun(2)
	second.ID = "fixed-id"
	_, err = l.Record(ctx, second)
	require.NoError(t, err)

	runs, err := l.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "fixed-id", runs[0].ID, "newest first")
	assert.Equal(t, first.ID, runs[1].ID)
	assert.Equal(t, 2, runs[0].Exported)
	assert.Equal(t, "MyActivity.json", runs[0].InputFile)
	assert.True(t, second.StartedAt.Equal(runs[0].StartedAt))
	assert.True(t, second.WatermarkAfter.Equal(runs[0].WatermarkAfter))
	assert.True(t, runs[0].WatermarkBefore.IsZero())
	assert.True(t, runs[0].Advanced())
}

func TestList_Limit(t *testing.T) {
	ctx := context.Background()
	l := openLedger(t)
	for day := 1; day <= 5; day++ {
		_, err := l.Record(ctx, sampleRun(day))
		require.NoError(t, err)
	}

	runs, err := l.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, 5, runs[0].Exported)
	assert.Equal(t, 3, runs[2].Exported)
}

func TestRecord_DuplicateID(t *testing.T) {
	ctx := context.Background()
	l := openLedger(t)
	run := sampleRun(1)
	run.ID = "dup"

	_, err := l.Record(ctx, run)
	require.NoError(t, err)
	_, err = l.Record(ctx, run)
	assert.Error(t, err)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")

	l, err := Open(path)
	require.NoError(t, err)
	_, err = l.Record(ctx, sampleRun(1))
	require.NoError(t, err)
	require.NoError(t, l.Close())

	l, err = Open(path)
	require.NoError(t, err)
	defer l.Close()
	runs, err := l.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestWrite(t *testing.T) {
	run := sampleRun(3)
	run.ID = "0123456789abcdef"
	runs := []types.RunSummary{run}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, runs, "table"))
		out := buf.String()
		assert.Contains(t, out, "Exported")
		assert.Contains(t, out, "01234567 ")
		assert.NotContains(t, out, "89abcdef")
		assert.Contains(t, out, "2025-01-03T09:00:00+00:00")
		assert.Contains(t, out, "1 runs")
	})

	t.Run("empty table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, nil, ""))
		assert.Equal(t, "No runs recorded.\n", buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, runs, "yaml"))
		var decoded []types.RunSummary
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, run.ID, decoded[0].ID)
		assert.Equal(t, 3, decoded[0].Exported)
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, runs, "json"))
		assert.Contains(t, buf.String(), `"id": "0123456789abcdef"`)
		assert.Contains(t, buf.String(), `"exported": 3`)
	})

	t.Run("unknown format", func(t *testing.T) {
		assert.Error(t, Write(&bytes.Buffer{}, runs, "xml"))
	})
}
