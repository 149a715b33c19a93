package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeCorpusFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadCorpusParsesRecordsAndQueries(t *testing.T) {
	path := writeCorpusFile(t, `
records:
  - id: 1
    text: "Wireless Headphones"
  - id: 2
    text: "Mechanical Keyboard"
queries:
  - "keyboard"
  - "keybord"
`)

	corpus, err := LoadCorpus(path)
	require.NoError(t, err)

	want := Corpus{
		Records: []CorpusRecord{
			{ID: 1, Text: "Wireless Headphones"},
			{ID: 2, Text: "Mechanical Keyboard"},
		},
		Queries: []string{"keyboard", "keybord"},
	}
	if diff := cmp.Diff(want, corpus); diff != "" {
		t.Errorf("LoadCorpus() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCorpusRejectsEmptyRecordList(t *testing.T) {
	path := writeCorpusFile(t, "records: []\n")

	_, err := LoadCorpus(path)
	require.ErrorIs(t, err, ErrCorpusEmpty)
}

func TestLoadCorpusAllowsDuplicateIDsAndEmptyText(t *testing.T) {
	// Per-record problems are not LoadCorpus's job (§7 of SPEC_FULL.md):
	// during ingestion buildIndex skips the empty text and lets the later
	// duplicate id replace the earlier one.
	path := writeCorpusFile(t, `
records:
  - id: 1
    text: "first"
  - id: 1
    text: "second"
  - id: 2
    text: ""
`)

	corpus, err := LoadCorpus(path)
	require.NoError(t, err)
	require.Len(t, corpus.Records, 3)
}

func TestLoadCorpusMissingFile(t *testing.T) {
	_, err := LoadCorpus(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrCorpusFileRead)
}
