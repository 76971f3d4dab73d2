package render

import (
	"strings"
)

// LineKind is the classification of one line of generated text.
type LineKind int

const (
	LinePlain LineKind = iota
	LineHeading
	LineFence
	LineListItem
	LineKeyValue
)

// String returns the string representation of a LineKind.
func (k LineKind) String() string {
	switch k {
	case LinePlain:
		return "Plain"
	case LineHeading:
		return "Heading"
	case LineFence:
		return "Fence"
	case LineListItem:
		return "ListItem"
	case LineKeyValue:
		return "KeyValue"
	default:
		return "Unknown"
	}
}

// lineRule pairs a predicate with the styling applied when it matches.
type lineRule struct {
	kind   LineKind
	match  func(line string) bool
	render func(line string) string
}

// lineRules is evaluated top to bottom; the first match wins. Every line is
// judged on its own content, so text between fences is not tracked as code.
var lineRules = []lineRule{
	{
		kind:   LineHeading,
		match:  func(line string) bool { return strings.HasPrefix(line, "## ") },
		render: renderHeading,
	},
	{
		kind:   LineFence,
		match:  func(line string) bool { return strings.HasPrefix(line, "```") },
		render: renderFence,
	},
	{
		kind:   LineListItem,
		match:  func(line string) bool { return strings.HasPrefix(line, "- ") },
		render: renderListItem,
	},
	{
		kind:   LineKeyValue,
		match:  func(line string) bool { return strings.Contains(line, ":") },
		render: renderKeyValue,
	},
}

func renderHeading(line string) string  { return HeadingStyle.Render(line) }
func renderFence(line string) string    { return FenceStyle.Render(line) }
func renderListItem(line string) string { return ListItemStyle.Render(line) }

// renderKeyValue splits at the first colon only; later colons stay in the value.
func renderKeyValue(line string) string {
	key, value, _ := strings.Cut(line, ":")
	return KeyStyle.Render(key) + ":" + ValueStyle.Render(value)
}

// ClassifyLine returns the kind of the first rule matching line.
func ClassifyLine(line string) LineKind {
	for _, rule := range lineRules {
		if rule.match(line) {
			return rule.kind
		}
	}
	return LinePlain
}

// FormatLine styles a single line.
func FormatLine(line string) string {
	for _, rule := range lineRules {
		if rule.match(line) {
			return rule.render(line)
		}
	}
	return PlainStyle.Render(line)
}

// FormatOutput styles every line of text independently. The result has the
// same number of lines, in the same order, joined with "\n".
func FormatOutput(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = FormatLine(line)
	}
	return strings.Join(lines, "\n")
}
