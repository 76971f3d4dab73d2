package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionCursorUp, "CursorUp"},
		{ActionCursorDown, "CursorDown"},
		{ActionFirst, "First"},
		{ActionLast, "Last"},
		{ActionToggle, "Toggle"},
		{ActionToggleAll, "ToggleAll"},
		{ActionSwitch, "Switch"},
		{ActionYes, "Yes"},
		{ActionNo, "No"},
		{ActionFilter, "Filter"},
		{ActionSubmit, "Submit"},
		{ActionCancel, "Cancel"},
		{ActionInterrupt, "Interrupt"},
		{Action(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.action.String(); got != tt.expected {
				t.Errorf("Action.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDefaultKeyMapLookup(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, ActionCursorUp},
		{"k", runeKey("k"), ActionCursorUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, ActionCursorDown},
		{"j", runeKey("j"), ActionCursorDown},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, ActionFirst},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, ActionLast},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionToggle},
		{"a", runeKey("a"), ActionToggleAll},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, ActionSwitch},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, ActionSwitch},
		{"y", runeKey("y"), ActionYes},
		{"N", runeKey("N"), ActionNo},
		{"slash", runeKey("/"), ActionFilter},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, ActionSubmit},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, ActionCancel},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionInterrupt},
		{"unbound", runeKey("z"), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, km.Lookup(tt.msg))
		})
	}
}
