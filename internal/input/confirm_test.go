package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmDefaultsToYes(t *testing.T) {
	m := NewConfirm("ColorSchema", nil)
	assert.True(t, m.Value())
	assert.Equal(t, ResultNone, m.Result())

	got, cmd := sendKeys(t, m, keyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, ResultSubmit, got.(ConfirmModel).Result())
	assert.True(t, got.(ConfirmModel).Value())
}

func TestConfirmKeys(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.Msg
		value  bool
		result ResultType
	}{
		{"switch then submit", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, keyEnter}, false, ResultSubmit},
		{"switch twice", []tea.Msg{tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyRight}, keyEnter}, true, ResultSubmit},
		{"n answers immediately", []tea.Msg{runeKey("n")}, false, ResultSubmit},
		{"y answers immediately", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, runeKey("y")}, true, ResultSubmit},
		{"escape cancels", []tea.Msg{keyEsc}, true, ResultCancel},
		{"ctrl+c cancels", []tea.Msg{keyCtrlC}, true, ResultCancel},
		{"unbound key is ignored", []tea.Msg{runeKey("z")}, true, ResultNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := sendKeys(t, NewConfirm("Treesitter", nil), tt.keys...)
			cm := got.(ConfirmModel)
			assert.Equal(t, tt.value, cm.Value())
			assert.Equal(t, tt.result, cm.Result())
		})
	}
}

func TestConfirmView(t *testing.T) {
	m := NewConfirm("ColorSchema", nil)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "ColorSchema")
	assert.Contains(t, view, "● Yes")
	assert.Contains(t, view, "○ No")

	got, _ := sendKeys(t, m, tea.KeyMsg{Type: tea.KeyTab})
	view = ansi.Strip(got.View())
	assert.Contains(t, view, "○ Yes")
	assert.Contains(t, view, "● No")

	got, _ = sendKeys(t, got, keyEnter)
	assert.Empty(t, got.View())
}
