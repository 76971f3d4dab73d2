package input

import (
	"strings"

	"github.com/atinylittleshell/setup-neovim/internal/render"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is the Bubble Tea model of a yes/no prompt.
type ConfirmModel struct {
	message string
	value   bool
	keymap  *KeyMap
	result  ResultType
}

// NewConfirm creates a confirmation prompt. The answer starts at Yes.
func NewConfirm(message string, keymap *KeyMap) ConfirmModel {
	if keymap == nil {
		keymap = DefaultKeyMap()
	}
	return ConfirmModel{
		message: message,
		value:   true,
		keymap:  keymap,
	}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.result != ResultNone {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.keymap.Lookup(keyMsg) {
	case ActionSwitch:
		m.value = !m.value
	case ActionYes:
		m.value = true
		m.result = ResultSubmit
		return m, tea.Quit
	case ActionNo:
		m.value = false
		m.result = ResultSubmit
		return m, tea.Quit
	case ActionSubmit:
		m.result = ResultSubmit
		return m, tea.Quit
	case ActionCancel, ActionInterrupt:
		m.result = ResultCancel
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	if m.result != ResultNone {
		return ""
	}

	yes := render.DimStyle.Render("○ Yes")
	no := render.DimStyle.Render("○ No")
	if m.value {
		yes = render.CursorStyle.Render("●") + " Yes"
	} else {
		no = render.CursorStyle.Render("●") + " No"
	}

	var b strings.Builder
	b.WriteString(render.StyledSymbol(render.SymbolActive, true) + "  " + m.message + "\n")
	b.WriteString(render.StyledSymbol(render.SymbolBar, true) + "  " + yes + " / " + no + "\n")
	b.WriteString(render.StyledSymbol(render.SymbolOutro, true) + "\n")
	return b.String()
}

// Result returns how the prompt ended.
func (m ConfirmModel) Result() ResultType {
	return m.result
}

// Value returns the current answer.
func (m ConfirmModel) Value() bool {
	return m.value
}
