package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"hexapath/internal/catalog"
	"hexapath/internal/hexagram"
	"hexapath/internal/operator"
	"hexapath/internal/reach"
)

// #region main

func main() {
	start := flag.String("start", "", "6-bit start code (e.g. 101010)")
	goal := flag.String("goal", "", "6-bit goal code; omit for a full distance table")
	ops := flag.String("ops", "all", "comma-separated operator ids, or 'all' / 'free'")
	dbPath := flag.String("db", "", "optional catalog db; builtin King Wen table when empty")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	if *start == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --start 101010 [--goal 010101] [--ops shift,invert] [--db catalog.db] [--json]")
		os.Exit(2)
	}

	cat, cleanup, err := openCatalog(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalog: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	startCode, err := hexagram.Parse(*start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start: %v\n", err)
		os.Exit(2)
	}
	allowed, err := parseOps(*ops)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ops: %v\n", err)
		os.Exit(2)
	}

	if *goal != "" {
		goalCode, err := hexagram.Parse(*goal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "goal: %v\n", err)
			os.Exit(2)
		}
		runPairMode(cat, startCode, goalCode, allowed, *jsonOut)
	} else {
		runTableMode(cat, startCode, allowed, *jsonOut)
	}
}

// #endregion main

// #region catalog

func openCatalog(dbPath string) (catalog.Catalog, func(), error) {
	if dbPath == "" {
		return catalog.Builtin(), func() {}, nil
	}
	store, err := catalog.NewStore(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}

func parseOps(arg string) ([]operator.ID, error) {
	switch arg {
	case "all":
		return operator.IDs(), nil
	case "free":
		var ids []operator.ID
		for id := range operator.FreeSet() {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		return ids, nil
	}
	var ids []operator.ID
	for _, part := range strings.Split(arg, ",") {
		id := operator.ID(strings.TrimSpace(part))
		if _, ok := operator.Lookup(id); !ok {
			return nil, fmt.Errorf("unknown operator %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// #endregion catalog

// #region pair-mode

type pairResult struct {
	Start      string   `json:"start"`
	Goal       string   `json:"goal"`
	Distance   *int     `json:"distance"` // null when unreachable
	FirstMoves []string `json:"first_moves"`
}

func runPairMode(cat catalog.Catalog, start, goal hexagram.Code, allowed []operator.ID, jsonOut bool) {
	res := reach.ShortestPath(start, goal, allowed, cat)

	out := pairResult{Start: string(start), Goal: string(goal), FirstMoves: []string{}}
	if res.Reachable {
		d := res.Distance
		out.Distance = &d
	}
	for id := range res.FirstMoves {
		out.FirstMoves = append(out.FirstMoves, string(id))
	}
	sort.Strings(out.FirstMoves)

	if jsonOut {
		json.NewEncoder(os.Stdout).Encode(out)
		return
	}
	if out.Distance == nil {
		fmt.Printf("%s → %s: unreachable with %d operators\n", start, goal, len(allowed))
		return
	}
	fmt.Printf("%s → %s: distance %d\n", start, goal, *out.Distance)
	fmt.Printf("optimal first moves: %s\n", strings.Join(out.FirstMoves, ", "))
}

// #endregion pair-mode

// #region table-mode

type tableRow struct {
	Goal     string `json:"goal"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Distance *int   `json:"distance"`
}

func runTableMode(cat catalog.Catalog, start hexagram.Code, allowed []operator.ID, jsonOut bool) {
	var rows []tableRow
	for _, goal := range cat.Codes() {
		entry, _ := cat.Lookup(goal)
		row := tableRow{Goal: string(goal), Number: entry.Number, Name: entry.Name}
		if goal != start {
			res := reach.ShortestPath(start, goal, allowed, cat)
			if res.Reachable {
				d := res.Distance
				row.Distance = &d
			}
		} else {
			zero := 0
			row.Distance = &zero
		}
		rows = append(rows, row)
	}

	if jsonOut {
		json.NewEncoder(os.Stdout).Encode(rows)
		return
	}
	fmt.Printf("distances from %s with %d operators:\n", start, len(allowed))
	for _, row := range rows {
		dist := "-"
		if row.Distance != nil {
			dist = fmt.Sprintf("%d", *row.Distance)
		}
		fmt.Printf("  %2d  %s  %-28s %s\n", row.Number, row.Goal, row.Name, dist)
	}
}

// #endregion table-mode
