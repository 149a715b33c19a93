package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CorpusRecord is one record as read from a YAML corpus file, matching
// flashfuzzy's add_record(id, text) shape (§6 "add_record").
type CorpusRecord struct {
	ID   uint32 `yaml:"id"`
	Text string `yaml:"text"`
}

// Corpus is an ordered list of records plus an optional default query list,
// letting a single file drive both corpus loading and a scripted bench run.
type Corpus struct {
	Records []CorpusRecord `yaml:"records"`
	Queries []string       `yaml:"queries,omitempty"`
}

// LoadCorpus reads and parses a YAML corpus file, rejecting only what
// prevents loading from proceeding at all: an unreadable file, malformed
// YAML, or an empty record list. Per-record problems are not checked
// here: buildIndex reports and skips records the engine rejects (empty
// text, text too long for the engine's scratch buffer), matching the
// engine's own "input rejection becomes a no-op" posture (§7 of
// SPEC_FULL.md), and a duplicate id simply replaces the earlier record.
func LoadCorpus(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, &CorpusError{Path: path, Err: fmt.Errorf("%w: %v", ErrCorpusFileRead, err)}
	}

	var corpus Corpus
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return Corpus{}, &CorpusError{Path: path, Err: fmt.Errorf("%w: %v", ErrCorpusInvalid, err)}
	}

	if len(corpus.Records) == 0 {
		return Corpus{}, &CorpusError{Path: path, Err: ErrCorpusEmpty}
	}

	return corpus, nil
}
