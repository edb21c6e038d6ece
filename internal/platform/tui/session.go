package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/slidepuzzle/internal/board"
	"github.com/vovakirdan/slidepuzzle/internal/levels"
	"github.com/vovakirdan/slidepuzzle/internal/render"
	"github.com/vovakirdan/slidepuzzle/internal/storage"
)

// SessionOptions configures a full session.
type SessionOptions struct {
	Levels       []levels.Level
	DefaultSeed  board.Seed // Starting board for the custom seed entry
	HistoryDepth int
	ThemeName    string
	ShowHints    bool
	Store        *storage.Store
	Logger       *log.Logger
	User         string
	Width        int
	Height       int
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// SessionModel manages the session flow: menu -> game or scoreboard -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts      SessionOptions
	sessionID string
	logger    *log.Logger
	theme     render.Theme
	screen    screen
	menu      MenuModel
	game      GameModel
	scores    ScoreboardModel
	width     int
	height    int
	quitting  bool
}

// NewSessionModel creates a new session model with its own session ID.
func NewSessionModel(opts SessionOptions) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sessionID := uuid.NewString()
	theme, _ := render.ThemeByName(opts.ThemeName)

	return SessionModel{
		opts:      opts,
		sessionID: sessionID,
		logger:    logger.With("session", sessionID, "user", opts.User),
		theme:     theme,
		menu:      NewMenuModel(opts.Levels, opts.Store, sessionID, theme, opts.Width, opts.Height),
		width:     opts.Width,
		height:    opts.Height,
	}
}

// SessionID returns the ID solves are recorded under.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScores() {
		m.scores = NewScoreboardModel(m.opts.Levels, m.opts.Store, m.width, m.height)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		opts := GameOptions{
			HistoryDepth: m.opts.HistoryDepth,
			ThemeName:    m.opts.ThemeName,
			ShowHints:    m.opts.ShowHints,
			Store:        m.opts.Store,
			SessionID:    m.sessionID,
			Logger:       m.logger,
			Embedded:     true,
			Width:        m.width,
			Height:       m.height,
		}
		if selected.Custom() {
			opts.Title = "Custom seed"
			opts.Seed = m.opts.DefaultSeed
			opts.OpenSeedForm = true
		} else {
			opts.PuzzleID = selected.Level.ID
			opts.Title = selected.Level.Name
			opts.Seed = selected.Level.Seed
		}

		game, err := NewGameModel(opts)
		if err != nil {
			m.logger.Warn("cannot start puzzle", "title", opts.Title, "error", err)
			m.menu = NewMenuModel(m.opts.Levels, m.opts.Store, m.sessionID, m.theme, m.width, m.height)
			return m, nil
		}

		m.logger.Debug("puzzle started", "puzzle", game.PuzzleID())
		m.game = game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.BackToMenu() {
		m.logger.Debug("puzzle closed",
			"puzzle", m.game.PuzzleID(),
			"solved", m.game.Solved(),
			"moves", m.game.Moves(),
		)
		return m.backToMenu()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// backToMenu rebuilds the menu so it shows fresh best results.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Levels, m.opts.Store, m.sessionID, m.theme, m.width, m.height)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
