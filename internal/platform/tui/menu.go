package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// MenuModel is the Bubble Tea model for the level and difficulty picker.
type MenuModel struct {
	levels     []level.Level
	cursor     int
	difficulty config.Difficulty
	keys       MenuKeyMap
	help       help.Model
	theme      Theme
	width      int
	height     int
	quitting   bool
	selected   bool
}

// NewMenuModel creates a picker over the levels of pack.
func NewMenuModel(pack *level.Pack, diff config.Difficulty, width, height int) MenuModel {
	if pack == nil {
		pack = level.Default()
	}
	h := help.New()
	h.ShowAll = false
	h.Width = width

	return MenuModel{
		levels:     pack.Levels(),
		difficulty: diff,
		keys:       DefaultMenuKeyMap(),
		help:       h,
		theme:      DefaultTheme(),
		width:      width,
		height:     height,
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
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		m.difficulty = m.difficulty.Prev()

	case key.Matches(msg, m.keys.Right):
		m.difficulty = m.difficulty.Next()

	case key.Matches(msg, m.keys.Select):
		if len(m.levels) > 0 {
			m.selected = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(t.MenuTitle.Render(centerText("P L A T F O R M E R", m.width)))
	b.WriteString("\n\n")
	b.WriteString(t.MenuDescription.Render(centerText("Select a level", m.width)))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		style := t.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = t.MenuItemActive
		}
		line := fmt.Sprintf("%s%d. %s", cursor, i+1, lvl.Name)
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	diff := fmt.Sprintf("Difficulty: < %s >", m.difficulty)
	b.WriteString(t.MenuDifficulty.Render(centerText(diff, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Result returns the outcome of the menu.
func (m MenuModel) Result() MenuResult {
	if !m.selected {
		return MenuResult{Difficulty: m.difficulty, Quit: true}
	}
	return MenuResult{Level: m.cursor + 1, Difficulty: m.difficulty}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level      int // 1-based
	Difficulty config.Difficulty
	Quit       bool
}

// RunMenu runs the picker and returns the selection.
func RunMenu(pack *level.Pack, diff config.Difficulty) (MenuResult, error) {
	w, h := TerminalSize()
	model := NewMenuModel(pack, diff, w, h)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Difficulty: diff, Quit: true}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Difficulty: diff, Quit: true}, nil
	}
	return m.Result(), nil
}
