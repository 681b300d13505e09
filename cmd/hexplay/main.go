package main

import (
	"flag"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hexapath/internal/catalog"
	"hexapath/internal/engine"
	"hexapath/internal/history"
)

// #region main

func main() {
	dbPath := flag.String("db", envOr("HEXPLAY_CATALOG", ""), "catalog db; builtin King Wen table when empty")
	historyPath := flag.String("history", envOr("HEXPLAY_HISTORY", ""), "round history db; disabled when empty")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for start/goal draws")
	flag.Parse()

	var cat catalog.Catalog = catalog.Builtin()
	if *dbPath != "" {
		store, err := catalog.NewStore(*dbPath)
		if err != nil {
			log.Fatalf("[HEXPLAY] open catalog %s: %v", *dbPath, err)
		}
		defer store.Close()
		if len(store.Codes()) == 0 {
			log.Fatalf("[HEXPLAY] catalog %s is empty; run catalog-export first", *dbPath)
		}
		cat = store
	}

	var rec *history.Recorder
	if *historyPath != "" {
		var err error
		rec, err = history.Open(*historyPath)
		if err != nil {
			log.Fatalf("[HEXPLAY] open history %s: %v", *historyPath, err)
		}
		defer rec.Close()
	}

	eng := engine.New(cat, engine.DefaultConfig(), *seed)
	if err := eng.StartRound(false); err != nil {
		log.Fatalf("[HEXPLAY] start round: %v", err)
	}

	m := newModel(eng, cat, rec)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("[HEXPLAY] tui: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion main
