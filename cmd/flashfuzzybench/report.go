package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/natefinch/atomic"
)

// QueryResult is one query's outcome, shaped after Index's result accessors
// (§6 "get_result_id", "get_result_score", "get_result_start/end").
type QueryResult struct {
	Pattern string        `json:"pattern"`
	Latency time.Duration `json:"latency_ns"`
	Matches []MatchReport `json:"matches"`
}

// MatchReport is one ranked match as read back through GetResult*.
type MatchReport struct {
	ID    uint32 `json:"id"`
	Score uint32 `json:"score"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// BenchReport is the full output of a scripted bench run: corpus size and
// pool stats alongside per-query timing, so two runs can be diffed.
type BenchReport struct {
	RecordCount     uint32        `json:"record_count"`
	StringPoolUsed  uint32        `json:"string_pool_used"`
	AvailableMemory uint32        `json:"available_memory"`
	TotalElapsed    time.Duration `json:"total_elapsed_ns"`
	Queries         []QueryResult `json:"queries"`
}

// WriteReport marshals report as indented JSON and writes it to path using
// an atomic rename, so a crash or concurrent read never observes a
// partially written report file.
func WriteReport(path string, report BenchReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReportWrite, err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrReportWrite, err)
	}

	return nil
}
