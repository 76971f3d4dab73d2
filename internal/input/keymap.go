package input

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a keyboard action that can be triggered by key bindings.
type Action int

const (
	// ActionNone represents no action (used when a key doesn't match any binding).
	ActionNone Action = iota

	// Navigation actions
	ActionCursorUp   // Move to the previous option (Up, k)
	ActionCursorDown // Move to the next option (Down, j)
	ActionFirst      // Jump to the first option (Home, g)
	ActionLast       // Jump to the last option (End, G)

	// Selection actions
	ActionToggle    // Toggle the option under the cursor (Space)
	ActionToggleAll // Select all, or clear when everything is selected (a)
	ActionSwitch    // Flip a yes/no answer (Left, Right, Tab)
	ActionYes       // Answer yes directly (y)
	ActionNo        // Answer no directly (n)
	ActionFilter    // Start typing a fuzzy filter (/)

	// Special actions
	ActionSubmit    // Submit the current answer (Enter)
	ActionCancel    // Cancel the wizard (Escape)
	ActionInterrupt // Cancel the wizard (Ctrl+C)
)

// String returns the string representation of an Action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionFirst:
		return "First"
	case ActionLast:
		return "Last"
	case ActionToggle:
		return "Toggle"
	case ActionToggleAll:
		return "ToggleAll"
	case ActionSwitch:
		return "Switch"
	case ActionYes:
		return "Yes"
	case ActionNo:
		return "No"
	case ActionFilter:
		return "Filter"
	case ActionSubmit:
		return "Submit"
	case ActionCancel:
		return "Cancel"
	case ActionInterrupt:
		return "Interrupt"
	default:
		return "Unknown"
	}
}

// KeyBinding represents a single key binding that maps a key to an action.
type KeyBinding struct {
	// Keys is the list of key sequences that trigger this binding.
	// Each string should be a valid tea.KeyMsg string representation.
	Keys []string
	// Action is the action to perform when this binding is triggered.
	Action Action
}

// KeyMap holds the key bindings shared by all prompts.
type KeyMap struct {
	bindings []KeyBinding
	lookup   map[string]Action
}

// NewKeyMap creates a new KeyMap with the given bindings.
func NewKeyMap(bindings []KeyBinding) *KeyMap {
	km := &KeyMap{
		bindings: bindings,
		lookup:   make(map[string]Action),
	}
	km.rebuildLookup()
	return km
}

// rebuildLookup rebuilds the internal lookup map from the bindings.
// Later bindings win when two bindings share a key.
func (km *KeyMap) rebuildLookup() {
	km.lookup = make(map[string]Action)
	for _, b := range km.bindings {
		for _, key := range b.Keys {
			km.lookup[key] = b.Action
		}
	}
}

// DefaultKeyMap returns a KeyMap with arrow and vi-style bindings.
func DefaultKeyMap() *KeyMap {
	return NewKeyMap([]KeyBinding{
		{Keys: []string{"up", "k", "ctrl+p"}, Action: ActionCursorUp},
		{Keys: []string{"down", "j", "ctrl+n"}, Action: ActionCursorDown},
		{Keys: []string{"home", "g"}, Action: ActionFirst},
		{Keys: []string{"end", "G"}, Action: ActionLast},

		{Keys: []string{" ", "space"}, Action: ActionToggle},
		{Keys: []string{"a"}, Action: ActionToggleAll},
		{Keys: []string{"left", "right", "h", "l", "tab"}, Action: ActionSwitch},
		{Keys: []string{"y", "Y"}, Action: ActionYes},
		{Keys: []string{"n", "N"}, Action: ActionNo},
		{Keys: []string{"/"}, Action: ActionFilter},

		{Keys: []string{"enter"}, Action: ActionSubmit},
		{Keys: []string{"esc"}, Action: ActionCancel},
		{Keys: []string{"ctrl+c"}, Action: ActionInterrupt},
	})
}

// Lookup finds the action for the given key message.
// Returns ActionNone if no binding matches.
func (km *KeyMap) Lookup(msg tea.KeyMsg) Action {
	if action, ok := km.lookup[msg.String()]; ok {
		return action
	}
	return ActionNone
}
