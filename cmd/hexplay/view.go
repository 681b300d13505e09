package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hexapath/internal/engine"
	"hexapath/internal/hexagram"
	"hexapath/internal/operator"
)

// #region styles

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	codeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	goalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	loseStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	msgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	hintStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))

	// scope colors follow the card art, whole purple, lower green, upper blue
	scopeColors = map[operator.Scope]lipgloss.Color{
		operator.ScopeWhole: lipgloss.Color("135"),
		operator.ScopeLower: lipgloss.Color("77"),
		operator.ScopeUpper: lipgloss.Color("75"),
	}

	buttonStyle = lipgloss.NewStyle().Padding(0, 1).
			Border(lipgloss.RoundedBorder())
	selectedButtonStyle = buttonStyle.Copy().
				Border(lipgloss.ThickBorder())
	lockedButtonStyle = buttonStyle.Copy().
				Foreground(lipgloss.Color("241")).
				BorderForeground(lipgloss.Color("238"))
)

// #endregion styles

// #region view

// View implements tea.Model.
func (m model) View() string {
	snap, ok := m.eng.Round()
	if !ok {
		return titleStyle.Render("hexapath") + "\n\n" +
			faintStyle.Render("no round active, press n to begin\n")
	}
	run := m.eng.Run()

	var b strings.Builder

	b.WriteString(titleStyle.Render("hexapath"))
	b.WriteString(faintStyle.Render(fmt.Sprintf("   insight %d   streak %d   collected %d/%d",
		run.Balance, run.StreakCurrent, len(run.Collected), len(m.cat.Codes()))))
	b.WriteString("\n\n")

	b.WriteString(m.renderBoard(snap))
	b.WriteString("\n")
	b.WriteString(m.renderOperators(snap))
	b.WriteString("\n")
	b.WriteString(m.renderStatus(snap, run))

	if m.message != "" {
		b.WriteString(msgStyle.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(faintStyle.Render("←/→ select  enter apply  b unlock  i hint  n next round  R reset run  q quit"))
	b.WriteString("\n")
	return b.String()
}

// #endregion view

// #region board

// renderBoard shows the current chain tip against the goal, with catalog
// names and glyphs when the codes resolve.
func (m *model) renderBoard(snap engine.RoundSnapshot) string {
	tip := snap.Start
	if len(snap.Chain) > 0 {
		tip = snap.Chain[len(snap.Chain)-1]
	}

	var b strings.Builder
	b.WriteString("  now  ")
	b.WriteString(codeStyle.Render(m.labelFor(tip)))
	b.WriteString("\n  goal ")
	b.WriteString(goalStyle.Render(m.labelFor(snap.Goal)))
	b.WriteString("\n")

	if len(snap.Chain) > 0 {
		parts := make([]string, 0, len(snap.Chain)+1)
		parts = append(parts, string(snap.Start))
		for _, c := range snap.Chain {
			parts = append(parts, string(c))
		}
		b.WriteString(faintStyle.Render("  path " + strings.Join(parts, " > ")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *model) labelFor(code hexagram.Code) string {
	if entry, ok := m.cat.Lookup(code); ok {
		return fmt.Sprintf("%s  %c %2d %s", code, entry.Glyph, entry.Number, entry.Name)
	}
	return string(code)
}

// #endregion board

// #region operators

// renderOperators draws one button per operator in catalog order. The
// selected button gets a thick border, locked ones are dimmed, and when a
// hint is armed the optimal first moves glow.
func (m *model) renderOperators(snap engine.RoundSnapshot) string {
	buttons := make([]string, 0, len(operator.Definitions))
	for i, def := range operator.Definitions {
		label := def.Short
		if snap.HintArmed && snap.OptimalFirstMoves[def.ID] {
			label = hintStyle.Render(label)
		}

		style := buttonStyle
		switch {
		case !m.eng.Unlocked(def.ID):
			style = lockedButtonStyle
			label = faintStyle.Render(def.Short)
		case i == m.selected:
			style = selectedButtonStyle
		}
		if m.eng.Unlocked(def.ID) {
			style = style.Copy().BorderForeground(scopeColors[def.Scope])
		}
		buttons = append(buttons, style.Render(label))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	def := operator.Definitions[m.selected]
	detail := fmt.Sprintf("%s %s (%s)  %s", def.Card, def.Term, def.Pinyin, def.Desc)
	if preview, ok := m.eng.PreviewMove(def.ID); ok {
		detail += faintStyle.Render(fmt.Sprintf("  > %s", preview))
	}
	if !m.eng.Unlocked(def.ID) {
		detail += faintStyle.Render(fmt.Sprintf("  [locked, %d insight]", m.eng.Run().NextUnlockCost))
	}
	return row + "\n" + detail + "\n"
}

// #endregion operators

// #region status

func (m *model) renderStatus(snap engine.RoundSnapshot, run engine.RunSnapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  moves %d/%d", snap.Moves, snap.MoveLimit))
	if snap.StaticOptimalKnown {
		b.WriteString(faintStyle.Render(fmt.Sprintf("   optimal %d", snap.StaticOptimal)))
	}
	if snap.LiveReachable {
		b.WriteString(faintStyle.Render(fmt.Sprintf("   remaining %d", snap.LiveDistance)))
	} else {
		b.WriteString(faintStyle.Render("   goal unreachable with current operators"))
	}
	b.WriteString("\n")

	if snap.Locked {
		switch snap.Outcome {
		case engine.OutcomeSuccess:
			b.WriteString(winStyle.Render("  goal reached"))
			if a := snap.Award; a != nil {
				b.WriteString(winStyle.Render(fmt.Sprintf("  +%d insight", a.Gained)))
				b.WriteString(faintStyle.Render(fmt.Sprintf(
					"  (base %d, optimal %d, streak %d, hints -%d)",
					a.Base, a.OptimalBonus, a.StreakBonus, a.HintPenalty)))
				if a.WasOptimal {
					b.WriteString(winStyle.Render("  optimal!"))
				}
			}
		case engine.OutcomeFailure:
			b.WriteString(loseStyle.Render("  out of moves, the goal slipped away"))
		}
		if run.Complete {
			b.WriteString("\n" + winStyle.Render("  all 64 hexagrams collected"))
		}
		b.WriteString("\n" + faintStyle.Render("  press n for the next round"))
		b.WriteString("\n")
	}
	return b.String()
}

// #endregion status
