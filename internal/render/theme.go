package render

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for the board and the screens around it.
type Theme struct {
	Frame  lipgloss.Style
	Empty  lipgloss.Style
	Up     lipgloss.Style
	Right  lipgloss.Style
	Down   lipgloss.Style
	Left   lipgloss.Style
	Cursor lipgloss.Style

	Title     lipgloss.Style
	HUDLabel  lipgloss.Style
	HUDValue  lipgloss.Style
	Controls  lipgloss.Style
	Win       lipgloss.Style
	Error     lipgloss.Style
	MenuItem  lipgloss.Style
	MenuFocus lipgloss.Style
	MenuHint  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Frame:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Up:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Right:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Down:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Left:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),

		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Controls:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Win:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		MenuItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Up = lipgloss.NewStyle().Foreground(lipgloss.Color("118")).Bold(true)
	theme.Right = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	theme.Down = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	theme.Left = lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Bold(true)
	theme.Frame = lipgloss.NewStyle().Foreground(lipgloss.Color("171"))
	return theme
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Up = lipgloss.NewStyle().Foreground(lipgloss.Color("157"))
	theme.Right = lipgloss.NewStyle().Foreground(lipgloss.Color("123"))
	theme.Down = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	theme.Left = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	for _, s := range []*lipgloss.Style{&theme.Up, &theme.Right, &theme.Down, &theme.Left} {
		*s = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	}
	theme.Win = lipgloss.NewStyle().Reverse(true).Bold(true)
	theme.MenuFocus = lipgloss.NewStyle().Reverse(true)
	return theme
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
	"pastel":  PastelTheme,
	"mono":    MonochromeTheme,
}

// ThemeByName looks up a theme, case-insensitively.
func ThemeByName(name string) (Theme, bool) {
	fn, ok := themes[strings.ToLower(name)]
	if !ok {
		return DefaultTheme(), false
	}
	return fn(), true
}

// ThemeNames lists the available theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t Theme) style(tone Tone) lipgloss.Style {
	switch tone {
	case ToneFrame:
		return t.Frame
	case ToneEmpty:
		return t.Empty
	case ToneUp:
		return t.Up
	case ToneRight:
		return t.Right
	case ToneDown:
		return t.Down
	case ToneLeft:
		return t.Left
	case ToneCursor:
		return t.Cursor
	default:
		return lipgloss.NewStyle()
	}
}

// Render converts a canvas to a styled string. Adjacent cells with the same
// tone are rendered as one run.
func (t Theme) Render(c *Canvas) string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			tone := c.Get(x, y).Tone

			var run strings.Builder
			for x < c.Width() {
				cell := c.Get(x, y)
				if cell.Tone != tone {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(t.style(tone).Render(run.String()))
		}
	}
	return sb.String()
}

// Styled frames the grid and renders it with the theme.
func Styled(g Grid, cursor Cursor, theme Theme) string {
	return theme.Render(Frame(g, cursor))
}
