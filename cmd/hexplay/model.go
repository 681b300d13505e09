package main

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"hexapath/internal/catalog"
	"hexapath/internal/engine"
	"hexapath/internal/history"
	"hexapath/internal/operator"
)

// #region model

// model is the bubbletea state for the puzzle view. All game state lives in
// the engine; the model only holds presentation concerns.
type model struct {
	eng *engine.Engine
	cat catalog.Catalog
	rec *history.Recorder

	selected int // index into operator.Definitions
	message  string
	width    int

	lastRecorded string // round id already written to history
}

func newModel(eng *engine.Engine, cat catalog.Catalog, rec *history.Recorder) model {
	return model{eng: eng, cat: cat, rec: rec}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// #endregion model

// #region update

// Update implements tea.Model. Every branch issues at most one engine
// command; the engine finishes guidance recomputation before returning.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left":
			m.selected = (m.selected + len(operator.Definitions) - 1) % len(operator.Definitions)
			m.message = ""

		case "right", "tab":
			m.selected = (m.selected + 1) % len(operator.Definitions)
			m.message = ""

		case "enter", " ":
			m.applySelected()

		case "b":
			m.buySelected()

		case "i":
			if m.eng.PurchaseHint() {
				m.message = "hint armed for your next move"
			} else {
				m.message = "hint unavailable (armed already, round over, or short on insight)"
			}

		case "n":
			m.nextRound(false)

		case "R":
			m.nextRound(true)
		}
	}
	return m, nil
}

func (m *model) applySelected() {
	def := operator.Definitions[m.selected]
	if !m.eng.ApplyMove(def.ID) {
		if !m.eng.Unlocked(def.ID) {
			m.message = fmt.Sprintf("%s is locked — press b to buy it", def.Short)
		} else {
			m.message = "move rejected"
		}
		return
	}
	m.message = ""
	m.recordIfResolved()
}

func (m *model) buySelected() {
	def := operator.Definitions[m.selected]
	if m.eng.Unlocked(def.ID) {
		m.message = fmt.Sprintf("%s is already unlocked", def.Short)
		return
	}
	if m.eng.PurchaseUnlock(def.ID) {
		m.message = fmt.Sprintf("unlocked %s", def.Short)
	} else {
		m.message = fmt.Sprintf("cannot afford %s (%d insight)", def.Short, m.eng.Run().NextUnlockCost)
	}
}

func (m *model) nextRound(fullReset bool) {
	if !fullReset {
		if snap, ok := m.eng.Round(); ok && !snap.Locked {
			m.message = "finish this round first"
			return
		}
	}
	if err := m.eng.StartRound(fullReset); err != nil {
		m.message = "every hexagram has been a goal — press R for a fresh run"
		return
	}
	m.message = ""
}

// #endregion update

// #region history

// recordIfResolved writes a finished round to the history db exactly once.
func (m *model) recordIfResolved() {
	if m.rec == nil {
		return
	}
	snap, ok := m.eng.Round()
	if !ok || !snap.Locked || snap.ID == m.lastRecorded {
		return
	}
	m.lastRecorded = snap.ID

	run := m.eng.Run()
	rec := history.RoundRecord{
		RunID:        run.RunID,
		RoundID:      snap.ID,
		StartCode:    string(snap.Start),
		GoalCode:     string(snap.Goal),
		Outcome:      string(snap.Outcome),
		Moves:        snap.Moves,
		HintsUsed:    snap.HintsUsed,
		BalanceAfter: run.Balance,
		Streak:       run.StreakCurrent,
	}
	if snap.StaticOptimalKnown {
		optimal := snap.StaticOptimal
		rec.Optimal = &optimal
	}
	if snap.Award != nil {
		rec.Gained = snap.Award.Gained
	}
	if err := m.rec.Record(rec); err != nil {
		log.Printf("[HEXPLAY] record round: %v", err)
	}
}

// #endregion history
