package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected MenuChoice
	}{
		{"enter plays", []tea.KeyMsg{{Type: tea.KeyEnter}}, ChoicePlay},
		{"down once is demo", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, ChoiceDemo},
		{"down twice is scores", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, ChoiceScores},
		{"cursor stops at bottom", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, ChoiceQuit},
		{"cursor stops at top", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, ChoicePlay},
		{"tab opens scores", []tea.KeyMsg{{Type: tea.KeyTab}}, ChoiceScores},
		{"q quits", []tea.KeyMsg{runes("q")}, ChoiceQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel("Temple Runner", nil, core.DefaultConfig())
			for _, k := range tc.keys {
				m = menuUpdate(t, m, k)
			}
			if m.Choice() != tc.expected {
				t.Errorf("Choice() = %v, expected %v", m.Choice(), tc.expected)
			}
		})
	}
}

func TestMenuViewShowsSessionBest(t *testing.T) {
	ledger, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer ledger.Close()

	m := NewMenuModel("Temple Runner", ledger, core.DefaultConfig())
	if strings.Contains(m.View(), "Session best") {
		t.Error("no session line before any run")
	}

	if _, err := ledger.SaveRun(storage.RunRecord{Score: 321}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	view := m.View()
	if !strings.Contains(view, "Session best: 321") {
		t.Errorf("menu should show the session best, got:\n%s", view)
	}
	if !strings.Contains(view, "> Play") {
		t.Error("cursor should start on Play")
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel("Temple Runner", nil, core.DefaultConfig())
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	cfg := m.Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestSpaced(t *testing.T) {
	if got := spaced("Run"); got != "R U N" {
		t.Errorf("spaced(%q) = %q, expected %q", "Run", got, "R U N")
	}
}
