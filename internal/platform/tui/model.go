package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/slidepuzzle/internal/board"
	"github.com/vovakirdan/slidepuzzle/internal/history"
	"github.com/vovakirdan/slidepuzzle/internal/render"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
	"github.com/vovakirdan/slidepuzzle/internal/storage"
)

// customNamespace derives stable puzzle IDs for boards entered as seeds.
var customNamespace = uuid.MustParse("6f1c1a52-5a4e-4a53-9a47-2f0d3b7c9e10")

// GameOptions configures a game screen.
type GameOptions struct {
	PuzzleID     string // Empty derives an ID from the seed
	Title        string
	Seed         board.Seed
	HistoryDepth int
	ThemeName    string
	ShowHints    bool
	Store        *storage.Store // Optional; solves are not recorded without it
	SessionID    string
	Logger       *log.Logger
	Embedded     bool // Back returns to the caller instead of quitting
	OpenSeedForm bool
	Clock        func() time.Time
	Width        int
	Height       int
}

// GameModel is the Bubble Tea model for playing one puzzle.
type GameModel struct {
	state     *history.State
	start     board.Seed
	puzzleID  string
	title     string
	depth     int
	sessionID string
	store     *storage.Store
	logger    *log.Logger
	now       func() time.Time
	theme     render.Theme
	showHints bool
	embedded  bool

	cursor   render.Cursor
	keys     GameKeyMap
	formKeys SeedFormKeyMap
	help     help.Model
	input    textinput.Model
	editing  bool
	notice   string

	moves   int
	undos   int
	started time.Time
	elapsed time.Duration
	solved  bool
	saved   bool
	clock   int64
	ticking bool

	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game screen for the seed in opts.
func NewGameModel(opts GameOptions) (GameModel, error) {
	state, err := newState(opts.Seed, opts.HistoryDepth)
	if err != nil {
		return GameModel{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	puzzleID := opts.PuzzleID
	if puzzleID == "" {
		puzzleID = customPuzzleID(opts.Seed)
	}
	title := opts.Title
	if title == "" {
		title = puzzleID
	}
	theme, _ := render.ThemeByName(opts.ThemeName)

	input := textinput.New()
	input.Prompt = "seed> "
	input.Placeholder = "[[null, 1], [0, null]]"
	input.CharLimit = 4096
	input.Width = 48

	h := help.New()
	h.ShowAll = false

	m := GameModel{
		state:     state,
		start:     opts.Seed,
		puzzleID:  puzzleID,
		title:     title,
		depth:     opts.HistoryDepth,
		sessionID: sessionID,
		store:     opts.Store,
		logger:    logger,
		now:       now,
		theme:     theme,
		showHints: opts.ShowHints,
		embedded:  opts.Embedded,
		cursor:    render.Cursor{},
		keys:      DefaultGameKeyMap(),
		formKeys:  DefaultSeedFormKeyMap(),
		help:      h,
		input:     input,
		started:   now(),
		clock:     newClock(),
		ticking:   true,
		width:     opts.Width,
		height:    opts.Height,
	}
	if opts.OpenSeedForm {
		m.openForm()
	}
	return m, nil
}

func newState(s board.Seed, depth int) (*history.State, error) {
	state, err := history.FromSeed(s, board.WithIDGenerator(uuid.NewString))
	if err != nil {
		return nil, err
	}
	if depth > 0 {
		state.SetMaxDepth(depth)
	}
	return state, nil
}

// customPuzzleID names a board that did not come from a puzzle pack.
func customPuzzleID(s board.Seed) string {
	id := uuid.NewSHA1(customNamespace, []byte(seed.Format(s)))
	return "custom-" + id.String()[:8]
}

// Init starts the game clock.
func (m GameModel) Init() tea.Cmd {
	if m.editing {
		return tea.Batch(tickCmd(m.clock), textinput.Blink)
	}
	return tickCmd(m.clock)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Clock != m.clock {
			return m, nil
		}
		if m.solved {
			m.ticking = false
			return m, nil
		}
		m.elapsed = m.now().Sub(m.started)
		return m, tickCmd(m.clock)

	case tea.KeyMsg:
		if m.editing {
			return m.handleFormKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input on the board.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.Slide):
		m.slide()

	case key.Matches(msg, m.keys.Undo):
		if !m.solved && m.state.Undo() {
			m.undos++
			m.notice = ""
		}

	case key.Matches(msg, m.keys.Restart):
		return m, m.restart()

	case key.Matches(msg, m.keys.Seed):
		return m, m.openForm()
	}

	return m, nil
}

// handleFormKey processes keyboard input while the seed form is open.
func (m GameModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.editing = false
		m.notice = ""
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.formKeys.Submit):
		return m, m.useSeed(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *GameModel) moveCursor(dx, dy int) {
	b := m.state.Peek()
	m.cursor.X = min(max(m.cursor.X+dx, 0), b.Width()-1)
	m.cursor.Y = min(max(m.cursor.Y+dy, 0), b.Height()-1)
}

func (m *GameModel) slide() {
	if m.solved {
		return
	}
	moved, err := m.state.Slide(m.cursor.X, m.cursor.Y)
	if err != nil {
		m.logger.Debug("slide rejected", "x", m.cursor.X, "y", m.cursor.Y, "error", err)
		return
	}
	if !moved {
		return
	}

	m.moves++
	m.notice = ""
	if m.state.IsWon() {
		m.solved = true
		m.elapsed = m.now().Sub(m.started)
		m.saveSolve()
	}
}

// saveSolve records the solve once. Storage failures don't interrupt play.
func (m *GameModel) saveSolve() {
	if m.saved {
		return
	}
	m.saved = true
	m.logger.Info("puzzle solved",
		"puzzle", m.puzzleID,
		"session", m.sessionID,
		"moves", m.moves,
		"undos", m.undos,
		"duration", m.elapsed.Round(time.Second),
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveSolve(storage.Solve{
		PuzzleID:  m.puzzleID,
		SessionID: m.sessionID,
		Moves:     m.moves,
		Undos:     m.undos,
		Duration:  m.elapsed,
	}); err != nil {
		m.logger.Warn("could not save solve", "puzzle", m.puzzleID, "error", err)
	}
}

// restart puts the starting board back and resets the counters.
func (m *GameModel) restart() tea.Cmd {
	if !m.state.Reset() {
		state, err := newState(m.start, m.depth)
		if err != nil {
			// The starting seed already built a board once.
			m.logger.Error("cannot rebuild starting board", "puzzle", m.puzzleID, "error", err)
			return nil
		}
		m.state = state
	}
	return m.newRun()
}

// newRun clears the counters and clock for a fresh attempt at the current
// board.
func (m *GameModel) newRun() tea.Cmd {
	m.moves = 0
	m.undos = 0
	m.solved = false
	m.saved = false
	m.notice = ""
	m.started = m.now()
	m.elapsed = 0
	m.moveCursor(0, 0)

	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd(m.clock)
}

func (m *GameModel) openForm() tea.Cmd {
	m.editing = true
	m.notice = ""
	m.input.SetValue(seed.Format(m.state.Peek().Export()))
	m.input.CursorEnd()
	return m.input.Focus()
}

// useSeed replaces the puzzle with one built from text. A rejected seed
// leaves the current board in place and keeps the form open.
func (m *GameModel) useSeed(text string) tea.Cmd {
	s, err := seed.Parse(text)
	var state *history.State
	if err == nil {
		state, err = newState(s, m.depth)
	}
	if err != nil {
		m.logger.Debug("seed rejected", "error", err)
		m.notice = seed.ErrInvalidSeed.Error()
		return nil
	}

	// Re-entering the starting board keeps the puzzle's identity.
	if !s.Equal(m.start) {
		m.puzzleID = customPuzzleID(s)
		m.title = "Custom seed"
	}
	m.state = state
	m.start = s
	m.editing = false
	m.input.Blur()
	m.cursor = render.Cursor{}
	m.logger.Debug("seed accepted", "puzzle", m.puzzleID)
	return m.newRun()
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	cur := m.state.Peek()
	parts := []string{
		m.theme.Title.Render(m.title),
		render.Styled(render.Project(cur), m.cursorForView(), m.theme),
		m.hud(cur),
	}

	if status := m.status(cur); status != "" {
		parts = append(parts, status)
	}

	if m.editing {
		parts = append(parts,
			"",
			m.theme.HUDLabel.Render("Paste a seed (2-D JSON array of 0-3 or null):"),
			m.input.View(),
			m.theme.MenuFocus.Render("[ Use this seed ]"),
		)
		if m.notice != "" {
			parts = append(parts, m.theme.Error.Render(m.notice))
		}
		parts = append(parts, "", m.theme.Controls.Render(m.help.View(m.formKeys)))
	} else {
		keys := m.keys
		keys.Undo.SetEnabled(!m.solved && m.state.CanUndo())
		parts = append(parts, "", m.theme.Controls.Render(m.help.View(keys)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m GameModel) cursorForView() render.Cursor {
	if m.solved {
		return render.NoCursor
	}
	return m.cursor
}

func (m GameModel) hud(cur *board.Board) string {
	field := func(label, value string) string {
		return m.theme.HUDLabel.Render(label+" ") + m.theme.HUDValue.Render(value)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		field("Moves", fmt.Sprint(m.moves)), "   ",
		field("Undos", fmt.Sprint(m.undos)), "   ",
		field("Blocks", fmt.Sprint(cur.Blocks())), "   ",
		field("Time", FormatDuration(m.elapsed)),
	)
}

func (m GameModel) status(cur *board.Board) string {
	switch {
	case m.solved:
		return m.theme.Win.Render(fmt.Sprintf("Cleared in %d moves, %s!", m.moves, FormatDuration(m.elapsed))) +
			m.theme.Controls.Render("  r: play again")
	case !m.showHints:
		return ""
	case cur.Stuck():
		return m.theme.Error.Render("No block can move. Undo (u) or restart (r).")
	default:
		return m.theme.HUDLabel.Render(fmt.Sprintf("%d of %d blocks can move", len(cur.Moves()), cur.Blocks()))
	}
}

// FormatDuration renders d as m:ss.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Solved reports whether the current puzzle has been cleared.
func (m GameModel) Solved() bool {
	return m.solved
}

// Moves returns the number of slides made since the last restart.
func (m GameModel) Moves() int {
	return m.moves
}

// Undos returns the number of undos since the last restart.
func (m GameModel) Undos() int {
	return m.undos
}

// Board returns the current board. Callers must not mutate it.
func (m GameModel) Board() *board.Board {
	return m.state.Peek()
}

// Cursor returns the highlighted cell.
func (m GameModel) Cursor() render.Cursor {
	return m.cursor
}

// PuzzleID returns the ID solves are recorded under.
func (m GameModel) PuzzleID() string {
	return m.puzzleID
}

// RunGame plays a single puzzle in the terminal.
func RunGame(opts GameOptions) error {
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
