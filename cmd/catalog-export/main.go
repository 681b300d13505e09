package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"hexapath/internal/catalog"
	"hexapath/internal/hexagram"
)

// #region main

func main() {
	dbPath := flag.String("db", "hexapath.db", "path to the catalog database")
	judgements := flag.String("judgements", "", "optional JSON file mapping code → judgement text")
	jsonOut := flag.Bool("json", false, "dump the seeded catalog as JSON to stdout")
	flag.Parse()

	store, err := catalog.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("[CATALOG] open %s: %v", *dbPath, err)
	}
	defer store.Close()

	entries := builtinEntries()
	if *judgements != "" {
		if err := mergeJudgements(entries, *judgements); err != nil {
			log.Fatalf("[CATALOG] judgements: %v", err)
		}
	}

	if err := store.Seed(entries); err != nil {
		log.Fatalf("[CATALOG] seed: %v", err)
	}
	log.Printf("[CATALOG] seeded %d hexagrams into %s", len(entries), *dbPath)

	if *jsonOut {
		if err := dumpJSON(store); err != nil {
			log.Fatalf("[CATALOG] dump: %v", err)
		}
	}
}

// #endregion main

// #region entries

func builtinEntries() []catalog.Entry {
	builtin := catalog.Builtin()
	entries := make([]catalog.Entry, 0, 64)
	for _, code := range builtin.Codes() {
		e, _ := builtin.Lookup(code)
		entries = append(entries, e)
	}
	return entries
}

// mergeJudgements loads a {"101010": "text", ...} file into the entries.
func mergeJudgements(entries []catalog.Entry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var texts map[string]string
	if err := json.Unmarshal(data, &texts); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for code := range texts {
		if _, err := hexagram.Parse(code); err != nil {
			return err
		}
	}
	for i := range entries {
		if text, ok := texts[string(entries[i].Code)]; ok {
			entries[i].Judgement = text
		}
	}
	return nil
}

// #endregion entries

// #region dump

type exportRow struct {
	Code      string `json:"code"`
	Number    int    `json:"number"`
	Name      string `json:"name"`
	Glyph     string `json:"glyph"`
	Judgement string `json:"judgement,omitempty"`
}

func dumpJSON(store *catalog.Store) error {
	rows := make([]exportRow, 0, 64)
	for _, code := range store.Codes() {
		e, _ := store.Lookup(code)
		rows = append(rows, exportRow{
			Code:      string(e.Code),
			Number:    e.Number,
			Name:      e.Name,
			Glyph:     string(e.Glyph),
			Judgement: e.Judgement,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// #endregion dump
