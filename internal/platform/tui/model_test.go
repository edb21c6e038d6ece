package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slidepuzzle/internal/board"
	"github.com/vovakirdan/slidepuzzle/internal/levels"
	"github.com/vovakirdan/slidepuzzle/internal/render"
	"github.com/vovakirdan/slidepuzzle/internal/seed"
	"github.com/vovakirdan/slidepuzzle/internal/storage"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m GameModel, keys ...string) GameModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		gm, ok := next.(GameModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = gm
	}
	return m
}

func mustSeed(t *testing.T, glyphs string) board.Seed {
	t.Helper()
	s, err := seed.ParseGlyphs(glyphs)
	if err != nil {
		t.Fatalf("ParseGlyphs(%q) failed: %v", glyphs, err)
	}
	return s
}

func boardText(m GameModel) string {
	return render.ASCII(render.Project(m.Board()))
}

func newTestGame(t *testing.T, glyphs string, opts GameOptions) GameModel {
	t.Helper()
	opts.Seed = mustSeed(t, glyphs)
	m, err := NewGameModel(opts)
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

func TestGameSolveIsSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	now := base
	m := newTestGame(t, ".>v.\n..<.", GameOptions{
		PuzzleID:  "002-make-way",
		Store:     store,
		SessionID: "sess",
		Clock:     func() time.Time { return now },
	})

	m = press(t, m, "right", "right", "down", "enter")
	m = press(t, m, "up", "enter")
	if m.Solved() {
		t.Fatal("solved too early")
	}

	now = base.Add(42 * time.Second)
	m = press(t, m, "left", "enter")
	if !m.Solved() {
		t.Fatalf("expected solved board, got:\n%s", boardText(m))
	}
	if m.Moves() != 3 {
		t.Errorf("Moves() = %d, want 3", m.Moves())
	}

	solves, err := store.BestSolves("002-make-way", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(solves) != 1 {
		t.Fatalf("got %d saved solves, want 1", len(solves))
	}
	if solves[0].Moves != 3 || solves[0].SessionID != "sess" || solves[0].Duration != 42*time.Second {
		t.Errorf("saved solve = %+v", solves[0])
	}

	// Further input on a cleared board does not record again.
	m = press(t, m, "enter", "u")
	solves, _ = store.BestSolves("002-make-way", 10)
	if len(solves) != 1 {
		t.Errorf("solve recorded %d times", len(solves))
	}
	if m.Undos() != 0 {
		t.Errorf("undo on a cleared board counted: %d", m.Undos())
	}
}

func TestGameUndoAndRestart(t *testing.T) {
	start := ".>v.\n..<."
	m := newTestGame(t, start, GameOptions{})

	m = press(t, m, "right", "right", "down", "enter")
	if boardText(m) == start {
		t.Fatal("slide did not change the board")
	}

	m = press(t, m, "u")
	if got := boardText(m); got != start {
		t.Errorf("after undo board = %q, want %q", got, start)
	}
	if m.Undos() != 1 || m.Moves() != 1 {
		t.Errorf("counters = moves %d undos %d, want 1 and 1", m.Moves(), m.Undos())
	}

	// Nothing left to undo.
	m = press(t, m, "u")
	if m.Undos() != 1 {
		t.Errorf("undo past the start counted: %d", m.Undos())
	}

	m = press(t, m, "enter", "r")
	if got := boardText(m); got != start {
		t.Errorf("after restart board = %q, want %q", got, start)
	}
	if m.Undos() != 0 || m.Moves() != 0 {
		t.Errorf("restart kept counters: moves %d undos %d", m.Moves(), m.Undos())
	}
}

func TestGameBlockedSlideIsNotAMove(t *testing.T) {
	m := newTestGame(t, "><", GameOptions{})
	m = press(t, m, "enter")
	if m.Moves() != 0 {
		t.Errorf("blocked slide counted as a move")
	}
	if got := boardText(m); got != "><" {
		t.Errorf("board changed: %q", got)
	}
}

func TestGameCursorStaysOnBoard(t *testing.T) {
	m := newTestGame(t, "..\n..", GameOptions{})

	m = press(t, m, "left", "up", "h", "k")
	if c := m.Cursor(); c.X != 0 || c.Y != 0 {
		t.Errorf("cursor = %+v, want origin", c)
	}

	m = press(t, m, "right", "right", "right", "down", "j", "j")
	if c := m.Cursor(); c.X != 1 || c.Y != 1 {
		t.Errorf("cursor = %+v, want (1,1)", c)
	}
}

func TestSeedForm(t *testing.T) {
	start := ".>v.\n..<."
	m := newTestGame(t, start, GameOptions{PuzzleID: "002-make-way"})

	m = press(t, m, "s")
	if !m.editing {
		t.Fatal("seed form did not open")
	}
	if got := m.input.Value(); got != seed.Format(m.Board().Export()) {
		t.Errorf("form prefilled with %q", got)
	}

	for _, bad := range []string{"[[9]]", "not json", "[[]]"} {
		m.input.SetValue(bad)
		m = press(t, m, "enter")
		if !m.editing {
			t.Fatalf("%q: form closed on invalid seed", bad)
		}
		if m.notice != seed.ErrInvalidSeed.Error() {
			t.Errorf("%q: notice = %q", bad, m.notice)
		}
		if got := boardText(m); got != start {
			t.Errorf("%q: board replaced by invalid seed: %q", bad, got)
		}
		if !strings.Contains(m.View(), "invalid seed value") {
			t.Errorf("%q: view does not show the error", bad)
		}
	}

	m.input.SetValue("[[null, 1]]")
	m = press(t, m, "enter")
	if m.editing {
		t.Fatal("form still open after a valid seed")
	}
	if got := boardText(m); got != ".>" {
		t.Errorf("board = %q, want %q", got, ".>")
	}
	if !strings.HasPrefix(m.PuzzleID(), "custom-") {
		t.Errorf("PuzzleID() = %q", m.PuzzleID())
	}

	m = press(t, m, "s", "esc")
	if m.editing || m.notice != "" {
		t.Error("esc did not close the form")
	}
}

func TestSeedFormKeepsPuzzleForSameBoard(t *testing.T) {
	m := newTestGame(t, ".>v.\n..<.", GameOptions{PuzzleID: "002-make-way", Title: "Make Way"})

	// The form is prefilled with the current board; submitting it unchanged
	// restarts the same puzzle.
	m = press(t, m, "right", "right", "s")
	m.input.SetValue("[[null, 1, 2], [null, null, 3, null]]")
	m = press(t, m, "enter")
	if m.editing {
		t.Fatal("form still open after a valid seed")
	}
	if m.PuzzleID() != "002-make-way" || m.title != "Make Way" {
		t.Errorf("puzzle = %q %q, want the original puzzle", m.PuzzleID(), m.title)
	}
	if m.Cursor() != (render.Cursor{}) {
		t.Errorf("cursor = %+v, want the origin", m.Cursor())
	}
}

func TestUndoHelpFollowsHistory(t *testing.T) {
	m := newTestGame(t, ".>v.\n..<.", GameOptions{})
	if strings.Contains(m.View(), "undo") {
		t.Error("undo offered before any move")
	}
	m = press(t, m, "right", "right", "down", "enter")
	if !strings.Contains(m.View(), "undo") {
		t.Error("undo not offered after a move")
	}
}

func TestCustomPuzzleIDIsStable(t *testing.T) {
	a := customPuzzleID(mustSeed(t, ">.\n.<"))
	b := customPuzzleID(mustSeed(t, ">.\n.<"))
	c := customPuzzleID(mustSeed(t, "<.\n.>"))
	if a != b {
		t.Errorf("same seed gave %q and %q", a, b)
	}
	if a == c {
		t.Errorf("different seeds share ID %q", a)
	}
}

func TestGameBackAndQuit(t *testing.T) {
	embedded := newTestGame(t, ">", GameOptions{Embedded: true})
	next, cmd := embedded.Update(keyMsg("esc"))
	if gm := next.(GameModel); !gm.BackToMenu() || gm.IsQuitting() || cmd != nil {
		t.Error("esc in an embedded game should return to the menu")
	}

	standalone := newTestGame(t, ">", GameOptions{})
	next, cmd = standalone.Update(keyMsg("esc"))
	if gm := next.(GameModel); !gm.IsQuitting() || cmd == nil {
		t.Error("esc in a standalone game should quit")
	}

	next, _ = standalone.Update(keyMsg("q"))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestGameViewShowsWinBanner(t *testing.T) {
	m := newTestGame(t, "...\n.>.\n...", GameOptions{Title: "First Slide"})
	if !strings.Contains(m.View(), "First Slide") {
		t.Error("view missing title")
	}

	m = press(t, m, "down", "right", "enter")
	view := m.View()
	if !strings.Contains(view, "Cleared in 1 moves") {
		t.Errorf("view missing win banner:\n%s", view)
	}
}

func TestGameHints(t *testing.T) {
	m := newTestGame(t, "><", GameOptions{ShowHints: true})
	if !strings.Contains(m.View(), "No block can move") {
		t.Error("stuck board should say so")
	}

	m = newTestGame(t, ">.", GameOptions{ShowHints: true})
	if !strings.Contains(m.View(), "1 of 1 blocks can move") {
		t.Errorf("missing hint:\n%s", m.View())
	}

	m = newTestGame(t, ">.", GameOptions{})
	if strings.Contains(m.View(), "can move") {
		t.Error("hints shown while disabled")
	}
}

func TestTickStopsAfterSolve(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	now := base
	m := newTestGame(t, ">", GameOptions{Clock: func() time.Time { return now }})

	now = base.Add(5 * time.Second)
	next, cmd := m.Update(TickMsg{Clock: m.clock, Time: now})
	m = next.(GameModel)
	if cmd == nil {
		t.Error("clock should keep ticking while unsolved")
	}
	if m.elapsed != 5*time.Second {
		t.Errorf("elapsed = %v, want 5s", m.elapsed)
	}

	m = press(t, m, "enter")
	next, cmd = m.Update(TickMsg{Clock: m.clock, Time: now})
	m = next.(GameModel)
	if cmd != nil {
		t.Error("clock should stop once solved")
	}

	m = press(t, m, "r")
	if !m.ticking {
		t.Error("restart should restart the clock")
	}
}

func TestTickForAnotherGameIsDropped(t *testing.T) {
	first := newTestGame(t, ">.", GameOptions{})
	second := newTestGame(t, ">.", GameOptions{})
	if first.clock == second.clock {
		t.Fatal("game screens share a clock")
	}

	next, cmd := second.Update(TickMsg{Clock: first.clock, Time: time.Now()})
	if cmd != nil {
		t.Error("a tick from another game started a second clock chain")
	}
	if next.(GameModel).elapsed != 0 {
		t.Error("a tick from another game moved the clock")
	}
}

func TestRestartRewindsHistory(t *testing.T) {
	start := ">.\n>."
	m := newTestGame(t, start, GameOptions{})
	first := m.Board()

	m = press(t, m, "enter", "r")
	if m.Board() != first {
		t.Error("restart should rewind to the starting board, not rebuild it")
	}

	// With one undo step kept, two slides evict the starting board.
	m = newTestGame(t, start, GameOptions{HistoryDepth: 1})
	m = press(t, m, "enter", "down", "enter")
	if !m.Solved() {
		t.Fatal("board should be cleared")
	}
	m = press(t, m, "r")
	if got := boardText(m); got != start {
		t.Errorf("after restart board = %q, want %q", got, start)
	}
	if m.Solved() || m.Moves() != 0 {
		t.Errorf("restart kept state: solved %v moves %d", m.Solved(), m.Moves())
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(83*time.Second + 400*time.Millisecond); got != "1:23" {
		t.Errorf("FormatDuration = %q, want 1:23", got)
	}
}

func TestMenuShowsSessionSolves(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for _, sess := range []string{"sess-a", "sess-a", "sess-b"} {
		if _, err := store.SaveSolve(storage.Solve{PuzzleID: "001-first-slide", SessionID: sess, Moves: 1}); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	lvls, err := levels.Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	view := NewMenuModel(lvls, store, "sess-a", render.DefaultTheme(), 120, 40).View()
	if !strings.Contains(view, "session sess-a · 2 solved") {
		t.Errorf("menu does not show the session's solves:\n%s", view)
	}
	if !strings.Contains(view, "best 1 moves") {
		t.Error("menu hint lost the best result")
	}
}

func TestSessionFlow(t *testing.T) {
	lvls, err := levels.Embedded().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	s := NewSessionModel(SessionOptions{
		Levels:      lvls,
		DefaultSeed: lvls[0].Seed,
		Width:       100,
		Height:      40,
	})

	step := func(k string) tea.Cmd {
		t.Helper()
		next, cmd := s.Update(keyMsg(k))
		s = next.(SessionModel)
		return cmd
	}

	step("enter")
	if s.screen != screenGame {
		t.Fatalf("screen = %v after selecting a puzzle", s.screen)
	}
	if s.game.PuzzleID() != lvls[0].ID {
		t.Errorf("game puzzle = %q, want %q", s.game.PuzzleID(), lvls[0].ID)
	}

	oldClock := s.game.clock
	step("esc")
	if s.screen != screenMenu {
		t.Fatalf("esc did not return to the menu")
	}

	// The closed game's pending tick must not reach the next game's clock.
	step("enter")
	if _, cmd := s.Update(TickMsg{Clock: oldClock, Time: time.Now()}); cmd != nil {
		t.Error("stale tick kept a second clock chain alive")
	}
	if _, cmd := s.Update(TickMsg{Clock: s.game.clock, Time: time.Now()}); cmd == nil {
		t.Error("current game's clock stopped")
	}
	step("esc")

	step("tab")
	if s.screen != screenScores {
		t.Fatalf("tab did not open the scoreboard")
	}
	if !strings.Contains(s.View(), lvls[0].Name) {
		t.Error("scoreboard does not name the puzzle")
	}

	step("esc")
	if s.screen != screenMenu {
		t.Fatal("esc did not leave the scoreboard")
	}

	// The last entry opens the seed form.
	for range lvls {
		step("down")
	}
	step("enter")
	if s.screen != screenGame || !s.game.editing {
		t.Fatal("custom entry should open a game with the seed form")
	}

	step("esc")
	step("esc")
	if cmd := step("q"); cmd == nil || !s.quitting {
		t.Error("q should quit the session")
	}
}
