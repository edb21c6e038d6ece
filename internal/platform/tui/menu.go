package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slidepuzzle/internal/levels"
	"github.com/vovakirdan/slidepuzzle/internal/render"
	"github.com/vovakirdan/slidepuzzle/internal/storage"
)

// MenuItem is a selectable entry in the puzzle picker. A nil Level is the
// custom seed entry.
type MenuItem struct {
	Level *levels.Level
	Title string
	Hint  string
}

// Custom reports whether the item opens the seed form.
func (i MenuItem) Custom() bool {
	return i.Level == nil
}

// MenuModel is the Bubble Tea model for the puzzle picker.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	width      int
	height     int
	theme      render.Theme
	keys       MenuKeyMap
	help       help.Model
	session    string
	quitting   bool
	selected   *MenuItem
	openScores bool
}

// NewMenuModel creates a menu over the given levels. Best results and the
// session's solve count are read from store when it is not nil.
func NewMenuModel(lvls []levels.Level, store *storage.Store, sessionID string, theme render.Theme, width, height int) MenuModel {
	var stats map[string]*storage.PuzzleStats
	if store != nil {
		stats, _ = store.AllPuzzleStats()
	}

	items := make([]MenuItem, 0, len(lvls)+1)
	for i := range lvls {
		lvl := &lvls[i]
		hint := lvl.Difficulty
		if st, ok := stats[lvl.ID]; ok && st.Solves > 0 {
			hint = fmt.Sprintf("%s · best %d moves", lvl.Difficulty, st.FewestMoves)
		}
		items = append(items, MenuItem{
			Level: lvl,
			Title: lvl.Name,
			Hint:  hint,
		})
	}
	items = append(items, MenuItem{Title: "Custom seed...", Hint: "paste your own board"})

	session := "session " + sessionID
	if store != nil && sessionID != "" {
		if solves, err := store.SessionSolves(sessionID); err == nil && len(solves) > 0 {
			session += fmt.Sprintf(" · %d solved", len(solves))
		}
	}

	return MenuModel{
		items:   items,
		session: session,
		width:   width,
		height:  height,
		theme:   theme,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Scores):
		m.openScores = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("S L I D E P U Z Z L E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuHint.Render("Clear every block off the board"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := m.theme.MenuItem
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuFocus
		}
		line := style.Render(fmt.Sprintf("%s%-22s", cursor, item.Title)) + " " + m.theme.MenuHint.Render(item.Hint)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Controls.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuHint.Render(m.session), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScores returns true if user requested the scoreboard.
func (m MenuModel) WantsScores() bool {
	return m.openScores
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
