// Package input provides the Bubble Tea prompts used by the setup wizard:
// a multi-select list and a yes/no confirmation.
package input

import (
	"strings"

	"github.com/atinylittleshell/setup-neovim/internal/catalog"
	"github.com/atinylittleshell/setup-neovim/internal/render"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// ResultType indicates how a prompt ended.
type ResultType int

const (
	// ResultNone indicates no result yet (still answering).
	ResultNone ResultType = iota
	// ResultSubmit indicates the user submitted the answer (Enter).
	ResultSubmit
	// ResultCancel indicates the user cancelled (Escape, Ctrl+C).
	ResultCancel
)

const defaultWidth = 80

// indent is the width of "│  › ◻ " in front of every option label.
const indent = 7

// MultiSelectModel is the Bubble Tea model of a multi-select prompt.
type MultiSelectModel struct {
	message  string
	options  []catalog.Option
	selected []bool
	keymap   *KeyMap
	width    int
	result   ResultType

	// visible holds indexes into options, in display order. cursor points
	// into visible.
	visible []int
	cursor  int

	filtering bool
	query     string
}

// NewMultiSelect creates a multi-select prompt with nothing selected.
func NewMultiSelect(message string, options []catalog.Option, keymap *KeyMap) MultiSelectModel {
	if keymap == nil {
		keymap = DefaultKeyMap()
	}
	m := MultiSelectModel{
		message:  message,
		options:  options,
		selected: make([]bool, len(options)),
		keymap:   keymap,
		width:    defaultWidth,
	}
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m MultiSelectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MultiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.result != ResultNone {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			if next, handled := m.handleFilterKey(msg); handled {
				return next, nil
			}
		}
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleFilterKey edits the filter query. Keys it does not consume (arrows,
// space, ctrl+c) fall through to the key map.
func (m MultiSelectModel) handleFilterKey(msg tea.KeyMsg) (MultiSelectModel, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		m.query += string(msg.Runes)
	case tea.KeyBackspace:
		if m.query == "" {
			return m, true
		}
		runes := []rune(m.query)
		m.query = string(runes[:len(runes)-1])
	case tea.KeyEnter:
		m.filtering = false
		return m, true
	case tea.KeyEscape:
		m.filtering = false
		m.query = ""
	default:
		return m, false
	}

	m.applyFilter()
	return m, true
}

// handleKeyMsg processes keyboard input.
func (m MultiSelectModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keymap.Lookup(msg) {
	case ActionCursorUp:
		if len(m.visible) > 0 {
			m.cursor = (m.cursor - 1 + len(m.visible)) % len(m.visible)
		}
	case ActionCursorDown:
		if len(m.visible) > 0 {
			m.cursor = (m.cursor + 1) % len(m.visible)
		}
	case ActionFirst:
		m.cursor = 0
	case ActionLast:
		m.cursor = max(len(m.visible)-1, 0)
	case ActionToggle:
		if len(m.visible) > 0 {
			i := m.visible[m.cursor]
			m.selected[i] = !m.selected[i]
		}
	case ActionToggleAll:
		all := lo.EveryBy(m.visible, func(i int) bool { return m.selected[i] })
		for _, i := range m.visible {
			m.selected[i] = !all
		}
	case ActionFilter:
		m.filtering = true
	case ActionSubmit:
		m.result = ResultSubmit
		return m, tea.Quit
	case ActionCancel:
		// A committed filter is cleared before esc cancels the prompt.
		if m.query != "" {
			m.query = ""
			m.applyFilter()
			return m, nil
		}
		m.result = ResultCancel
		return m, tea.Quit
	case ActionInterrupt:
		m.result = ResultCancel
		return m, tea.Quit
	}

	return m, nil
}

// applyFilter recomputes the visible options. An empty query shows every
// option in catalog order; otherwise fuzzy matches on the label are shown
// best first.
func (m *MultiSelectModel) applyFilter() {
	if m.query == "" {
		m.visible = lo.Range(len(m.options))
	} else {
		labels := lo.Map(m.options, func(o catalog.Option, _ int) string { return o.Label })
		m.visible = lo.Map(fuzzy.Find(m.query, labels), func(match fuzzy.Match, _ int) int {
			return match.Index
		})
	}
	m.cursor = 0
}

// View implements tea.Model. A finished prompt renders nothing; the caller
// prints the collapsed answer.
func (m MultiSelectModel) View() string {
	if m.result != ResultNone {
		return ""
	}

	var b strings.Builder
	b.WriteString(render.StyledSymbol(render.SymbolActive, true) + "  " + m.message + "\n")

	bar := render.StyledSymbol(render.SymbolBar, true)
	if m.filtering || m.query != "" {
		b.WriteString(bar + "  " + render.DimStyle.Render("/") + " " + m.query + "\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(bar + "  " + render.DimStyle.Render("no matches") + "\n")
	}

	labelWidth := uint(max(m.width-indent, 10))
	for row, i := range m.visible {
		option := m.options[i]

		cursor := " "
		if row == m.cursor {
			cursor = render.StyledSymbol(render.SymbolCursor, true)
		}
		box := render.StyledSymbol(render.SymbolBox, true)
		if m.selected[i] {
			box = render.StyledSymbol(render.SymbolChecked, true)
		}

		label := option.Label
		if option.Hint != "" {
			label += " (" + option.Hint + ")"
		}
		label = truncate.StringWithTail(label, labelWidth, "…")
		if hint := " (" + option.Hint + ")"; option.Hint != "" && strings.HasSuffix(label, hint) {
			label = strings.TrimSuffix(label, hint) + render.DimStyle.Render(hint)
		}
		if row == m.cursor {
			label = render.CursorStyle.Render(label)
		}

		b.WriteString(bar + "  " + cursor + " " + box + " " + label + "\n")
	}

	help := "↑/↓ move • space select • a all • / filter • enter submit • esc cancel"
	if m.filtering {
		help = "type to filter • enter done • esc clear"
	} else if m.query != "" {
		help = "↑/↓ move • space select • a all • / filter • enter submit • esc clear filter"
	}
	b.WriteString(render.StyledSymbol(render.SymbolOutro, true) + "  " + render.DimStyle.Render(help) + "\n")

	return b.String()
}

// Result returns how the prompt ended.
func (m MultiSelectModel) Result() ResultType {
	return m.result
}

// Cursor returns the catalog index of the highlighted option, or -1 when
// the filter matches nothing.
func (m MultiSelectModel) Cursor() int {
	if len(m.visible) == 0 {
		return -1
	}
	return m.visible[m.cursor]
}

// Query returns the current filter text.
func (m MultiSelectModel) Query() string {
	return m.query
}

// Values returns the selected option values in catalog order, including
// options hidden by the filter. The result is never nil.
func (m MultiSelectModel) Values() []string {
	return lo.FilterMap(m.options, func(o catalog.Option, i int) (string, bool) {
		return o.Value, m.selected[i]
	})
}

// Labels returns the selected option labels in catalog order.
func (m MultiSelectModel) Labels() []string {
	return lo.FilterMap(m.options, func(o catalog.Option, i int) (string, bool) {
		return o.Label, m.selected[i]
	})
}
