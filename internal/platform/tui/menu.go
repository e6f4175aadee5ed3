package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// MenuChoice is what the player picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceDemo
	ChoiceScores
	ChoiceQuit
)

// MenuItem is one selectable menu entry.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

// DefaultMenuItems returns the main menu entries.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Play", Choice: ChoicePlay},
		{Label: "Demo", Choice: ChoiceDemo},
		{Label: "Scores", Choice: ChoiceScores},
		{Label: "Quit", Choice: ChoiceQuit},
	}
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	title     string
	items     []MenuItem
	cursor    int
	width     int
	height    int
	ledger    *storage.Ledger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(title string, ledger *storage.Ledger, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		title:     title,
		items:     DefaultMenuItems(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		ledger:    ledger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.choice = m.items[m.cursor].Choice
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.choice = ChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")

	if best := m.bestLine(); best != "" {
		b.WriteString(centerText(best, m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// bestLine summarizes the session so far, or returns "" before any run.
func (m MenuModel) bestLine() string {
	if m.ledger == nil {
		return ""
	}
	stats, err := m.ledger.Stats()
	if err != nil || stats.Runs == 0 {
		return ""
	}
	return fmt.Sprintf("Session best: %d  (%d runs)", stats.BestScore, stats.Runs)
}

// Choice returns the selected entry, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// spaced puts a space between letters: "RUN" -> "R U N".
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(title string, ledger *storage.Ledger, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(title, ledger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
