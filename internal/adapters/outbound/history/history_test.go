package history_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongoshift/mongoshift/internal/adapters/outbound/history"
	"github.com/mongoshift/mongoshift/internal/domain"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.RunEntry{
		Timestamp:      "2026-08-26T10:00:00Z",
		CommitHash:     "abc1234",
		Entities:       3,
		Repositories:   2,
		Configurations: 2,
		EffortHours:    9,
	}

	err := h.Save(dir, entry)
	require.NoError(t, err)

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t1", EffortHours: 9}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t2", EffortHours: 7}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t3", EffortHours: 4}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "t1", entries[0].Timestamp)
	assert.Equal(t, 4.0, entries[2].EffortHours)
}

func TestHistory_LoadEmpty(t *testing.T) {
	dir := t.TempDir()

	entries, err := history.New().Load(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "deep", "nested")
	h := history.New()

	err := h.Save(nested, domain.RunEntry{Timestamp: "t1"})
	require.NoError(t, err)

	entries, err := h.Load(nested)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
