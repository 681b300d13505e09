package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"hexapath/internal/catalog"
	"hexapath/internal/engine"
	"hexapath/internal/replay"
)

// #region main

func main() {
	scriptPath := flag.String("script", "", "path to a replay script JSON")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --script path/to/script.json [--json]")
		os.Exit(2)
	}

	script, err := replay.LoadScript(*scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load: %v\n", err)
		os.Exit(1)
	}

	results, summary, err := replay.Run(catalog.Builtin(), engine.DefaultConfig(), script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		out := struct {
			Steps   []replay.StepResult `json:"steps"`
			Summary replay.Summary      `json:"summary"`
		}{results, summary}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
		return
	}

	if script.Description != "" {
		fmt.Println(script.Description)
	}
	fmt.Printf("%s → %s\n", script.Start, script.Goal)
	for _, r := range results {
		status := "applied"
		if !r.Applied {
			status = "rejected"
		}
		switch r.Action {
		case "hint":
			fmt.Printf("  %2d  hint              %-8s tip=%s\n", r.Index, status, r.Tip)
		default:
			fmt.Printf("  %2d  %-6s %-10s %-8s tip=%s\n", r.Index, r.Action, r.Operator, status, r.Tip)
		}
	}
	fmt.Printf("outcome=%s moves=%d gained=%d balance=%d hints=%d collected=%d\n",
		summary.Outcome, summary.Moves, summary.Gained, summary.Balance,
		summary.HintsUsed, summary.Collected)
}

// #endregion main
