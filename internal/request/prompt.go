// Package request turns collected preferences into a generation request and
// prints the formatted answer.
package request

import (
	"fmt"
	"strings"

	"github.com/atinylittleshell/setup-neovim/internal/preferences"
)

// Section labels interpolated into the prompt.
const (
	SectionPlugins       = "Plugins:"
	SectionSyntaxServers = "Treesitter servers:"
	SectionThemes        = "Colorschema:"
)

const promptHeader = `You are a master at crafting Neovim configurations.
Create a Neovim setup from scratch using the following requirements:
- Folder structure:
  1. init.lua (only require files like config.lazy and config.keymap)
  2. lua/config/ (directory for configuration files)
     - keymap.lua (key mappings)
     - lazy.lua (Bootstrap lazy.nvim and Setup lazy.nvim)
  3. plugin/init.lua (return all of the plugins)
`

const promptFooter = `  - Do not reference or rely on any previous context or history. Generate a fresh configuration.
- Format the output in Markdown-like styling for better readability.
`

// BuildPrompt renders the instruction sent to the model. The syntax server
// and theme sections only appear when their gate is set and their list is
// present; a closed gate hides a list whatever it contains.
func BuildPrompt(p preferences.Set) string {
	var b strings.Builder

	b.WriteString(promptHeader)
	fmt.Fprintf(&b, "- Use Lazy.nvim as the plugin manager. %s %s;", SectionPlugins, joinValues(p.Plugins))
	if p.HasSyntaxServers() {
		fmt.Fprintf(&b, " %s %s;", SectionSyntaxServers, joinValues(p.SyntaxServers))
	}
	if p.HasThemes() {
		fmt.Fprintf(&b, " %s %s;", SectionThemes, joinValues(p.Themes))
	}
	b.WriteString("\n")
	b.WriteString(promptFooter)

	return b.String()
}

func joinValues(values []string) string {
	return strings.Join(values, ", ")
}
