// flashfuzzybench is a demo and benchmarking CLI for the flashfuzzy engine.
//
// Usage:
//
//	flashfuzzybench bench --corpus corpus.yaml [--config engine.hjson] [--report report.json]
//	flashfuzzybench repl --corpus corpus.yaml [--config engine.hjson]
//
// bench loads a YAML corpus, runs every query listed in the corpus file (or
// supplied via --query, repeatable) against the engine, and reports
// per-query latency and matches, optionally persisting the results via
// --report.
//
// repl loads the same corpus into an interactive Index and drops into a
// readline-style prompt for ad hoc queries.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	flashfuzzy "github.com/RafaCalRob/FlashFuzzy"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		printUsage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "bench":
		return runBench(args[1:])
	case "repl":
		return runRepl(args[1:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  flashfuzzybench bench --corpus <file> [--config <file>] [--report <file>]")
	fmt.Fprintln(os.Stderr, "  flashfuzzybench repl --corpus <file> [--config <file>]")
}

// buildIndex loads cfg and corpus into a freshly initialized Index,
// returning the index and the corpus (for its query list, if any). A
// per-record ingestion failure (empty or oversized text, a rejecting
// add_record) is logged and the record skipped rather than aborting the
// whole load, matching the engine's own "input rejection becomes a no-op"
// posture extended to the corpus loader (§7 of SPEC_FULL.md).
func buildIndex(cfgPath, corpusPath string) (*flashfuzzy.Index, Corpus, error) {
	cfg, err := LoadEngineConfig(cfgPath)
	if err != nil {
		return nil, Corpus{}, err
	}

	corpus, err := LoadCorpus(corpusPath)
	if err != nil {
		return nil, Corpus{}, err
	}

	maxRecords := cfg.MaxRecords
	if maxRecords == 0 {
		maxRecords = flashfuzzy.DefaultMaxRecords
	}
	maxTextLen := cfg.MaxTextLen
	if maxTextLen == 0 {
		maxTextLen = flashfuzzy.DefaultMaxTextLen
	}
	arenaCap := cfg.ArenaCap
	if arenaCap == 0 {
		arenaCap = flashfuzzy.DefaultArenaCap
	}

	idx := flashfuzzy.NewIndexWithCapacity(maxRecords, maxTextLen, arenaCap)
	idx.SetThreshold(cfg.Threshold)
	idx.SetMaxErrors(cfg.MaxErrors)
	idx.SetMaxResults(cfg.MaxResults)

	skipped := 0
	for _, rec := range corpus.Records {
		if err := addRecordText(idx, rec.ID, rec.Text); err != nil {
			log.Printf("corpus %s: skipping record %d: %v", corpusPath, rec.ID, err)
			skipped++
			continue
		}
	}
	if skipped > 0 {
		log.Printf("corpus %s: skipped %d of %d record(s)", corpusPath, skipped, len(corpus.Records))
	}

	return idx, corpus, nil
}

// addRecordText copies text into the index's scratch buffer and commits it
// as record id, surfacing the boundary's bool-valued failure as a Go error
// for the CLI layer (§6 "add_record").
func addRecordText(idx *flashfuzzy.Index, id uint32, text string) error {
	buf := idx.GetWriteBuffer(len(text))
	if buf == nil {
		return fmt.Errorf("text too long for scratch buffer (%d bytes)", len(text))
	}
	copy(buf, text)
	idx.CommitWrite(len(text))
	if !idx.AddRecord(id) {
		return fmt.Errorf("add_record rejected id %d", id)
	}
	return nil
}

// runQuery prepares pattern and runs Search, reading back every result
// through the value-typed GetResult* accessors.
func runQuery(idx *flashfuzzy.Index, pattern string) QueryResult {
	start := time.Now()

	buf := idx.GetWriteBuffer(len(pattern))
	if buf != nil {
		copy(buf, pattern)
		idx.CommitWrite(len(pattern))
	}
	idx.PreparePattern()
	n := idx.Search()

	matches := make([]MatchReport, 0, n)
	for i := uint32(0); i < n; i++ {
		matches = append(matches, MatchReport{
			ID:    idx.GetResultID(i),
			Score: idx.GetResultScore(i),
			Start: idx.GetResultStart(i),
			End:   idx.GetResultEnd(i),
		})
	}

	return QueryResult{
		Pattern: pattern,
		Latency: time.Since(start),
		Matches: matches,
	}
}

func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	corpusPath := fs.String("corpus", "", "path to a YAML corpus file")
	configPath := fs.String("config", "", "path to a commented-JSON engine config file")
	reportPath := fs.String("report", "", "path to write a JSON bench report")
	var extraQueries []string
	fs.StringArrayVar(&extraQueries, "query", nil, "additional query pattern (repeatable)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *corpusPath == "" {
		return fmt.Errorf("bench: --corpus is required")
	}

	idx, corpus, err := buildIndex(*configPath, *corpusPath)
	if err != nil {
		return err
	}

	queries := append(append([]string{}, corpus.Queries...), extraQueries...)
	if len(queries) == 0 {
		return fmt.Errorf("bench: no queries (add a 'queries' list to the corpus file or pass --query)")
	}

	report := BenchReport{
		RecordCount:     idx.GetRecordCount(),
		StringPoolUsed:  idx.GetStringPoolUsed(),
		AvailableMemory: idx.GetAvailableMemory(),
	}

	overallStart := time.Now()
	for _, q := range queries {
		qr := runQuery(idx, q)
		report.Queries = append(report.Queries, qr)
		fmt.Printf("%-30q %v  %d match(es)\n", qr.Pattern, qr.Latency, len(qr.Matches))
	}
	report.TotalElapsed = time.Since(overallStart)

	if *reportPath != "" {
		if err := WriteReport(*reportPath, report); err != nil {
			return err
		}
		fmt.Printf("report written to %s\n", *reportPath)
	}

	return nil
}

func runRepl(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	corpusPath := fs.String("corpus", "", "path to a YAML corpus file")
	configPath := fs.String("config", "", "path to a commented-JSON engine config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *corpusPath == "" {
		return fmt.Errorf("repl: --corpus is required")
	}

	idx, _, err := buildIndex(*configPath, *corpusPath)
	if err != nil {
		return err
	}

	repl := &REPL{idx: idx}
	return repl.Run()
}
