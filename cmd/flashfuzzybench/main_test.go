package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIndexLoadsCorpusAndConfig(t *testing.T) {
	corpusPath := writeCorpusFile(t, `
records:
  - id: 1
    text: "Wireless Headphones"
  - id: 2
    text: "Mechanical Keyboard"
queries:
  - "keyboard"
`)

	idx, corpus, err := buildIndex("", corpusPath)
	require.NoError(t, err)
	require.Equal(t, uint32(2), idx.GetRecordCount())
	require.Equal(t, []string{"keyboard"}, corpus.Queries)
}

func TestBuildIndexReplacesDuplicateRecordIDsInPlace(t *testing.T) {
	// add_record on a repeated id replaces the earlier text rather than
	// failing (§4.2 "add"), so the corpus loader just lets the last one win.
	corpusPath := writeCorpusFile(t, `
records:
  - id: 1
    text: "first"
  - id: 1
    text: "second"
`)

	idx, _, err := buildIndex("", corpusPath)
	require.NoError(t, err)
	require.Equal(t, uint32(1), idx.GetRecordCount())
}

func TestBuildIndexSkipsEmptyTextRecords(t *testing.T) {
	corpusPath := writeCorpusFile(t, `
records:
  - id: 1
    text: "Mechanical Keyboard"
  - id: 2
    text: ""
`)

	idx, _, err := buildIndex("", corpusPath)
	require.NoError(t, err)
	require.Equal(t, uint32(1), idx.GetRecordCount())
}

func TestRunQueryReturnsRankedMatches(t *testing.T) {
	corpusPath := writeCorpusFile(t, `
records:
  - id: 1
    text: "Wireless Headphones"
  - id: 2
    text: "Mechanical Keyboard"
`)

	idx, _, err := buildIndex("", corpusPath)
	require.NoError(t, err)

	qr := runQuery(idx, "keyboard")
	require.Len(t, qr.Matches, 1)
	require.Equal(t, uint32(2), qr.Matches[0].ID)
}

func TestRunBenchRequiresCorpusFlag(t *testing.T) {
	err := runBench(nil)
	require.Error(t, err)
}

func TestRunBenchWritesReport(t *testing.T) {
	corpusPath := writeCorpusFile(t, `
records:
  - id: 1
    text: "Mechanical Keyboard"
queries:
  - "keyboard"
`)
	reportPath := filepath.Join(t.TempDir(), "report.json")

	err := runBench([]string{"--corpus", corpusPath, "--report", reportPath})
	require.NoError(t, err)
	require.FileExists(t, reportPath)
}
