package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	flashfuzzy "github.com/RafaCalRob/FlashFuzzy"
)

// REPL is an interactive query loop over a pre-loaded Index.
type REPL struct {
	idx   *flashfuzzy.Index
	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flashfuzzybench_history")
}

// Run starts the readline-style loop until the user exits or the input
// stream closes.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("flashfuzzybench repl (%d records loaded)\n", r.idx.GetRecordCount())
	fmt.Println("Type a query pattern, ':set <field> <value>', or 'exit'.")

	for {
		line, err := r.liner.Prompt("flashfuzzy> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.liner.AppendHistory(line)

		if line == "exit" || line == "quit" {
			break
		}

		if strings.HasPrefix(line, ":set ") {
			r.cmdSet(strings.Fields(line)[1:])
			continue
		}

		r.cmdQuery(line)
	}

	r.saveHistory()
	return nil
}

func (r *REPL) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *REPL) completer(line string) []string {
	commands := []string{":set threshold ", ":set max_errors ", ":set max_results ", "exit", "quit"}
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}

func (r *REPL) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: :set <threshold|max_errors|max_results> <value>")
		return
	}

	value, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		fmt.Printf("invalid value: %v\n", err)
		return
	}

	switch args[0] {
	case "threshold":
		r.idx.SetThreshold(uint32(value))
	case "max_errors":
		r.idx.SetMaxErrors(uint32(value))
	case "max_results":
		r.idx.SetMaxResults(uint32(value))
	default:
		fmt.Printf("unknown field: %s\n", args[0])
		return
	}

	fmt.Println("OK")
}

func (r *REPL) cmdQuery(pattern string) {
	qr := runQuery(r.idx, pattern)
	if len(qr.Matches) == 0 {
		fmt.Println("(no matches)")
		return
	}

	for _, m := range qr.Matches {
		fmt.Printf("  id=%-8d score=%.3f span=[%d,%d)\n", m.ID, float64(m.Score)/1000.0, m.Start, m.End)
	}
	fmt.Printf("%d match(es) in %v\n", len(qr.Matches), qr.Latency)
}
