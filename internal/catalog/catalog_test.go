package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Len(t, c.Plugins, 15)
	require.Len(t, c.SyntaxServers, 11)
	require.Len(t, c.Themes, 5)

	assert.Equal(t, Option{Value: "cmp-nvim-lsp", Label: "Cmp", Hint: "recommended"}, c.Plugins[0])
	assert.Equal(t, "lualine", c.Plugins[14].Value)
	assert.Equal(t, Option{Value: "lua", Label: "Lua", Hint: "recommended"}, c.SyntaxServers[0])
	assert.Equal(t, "c++", c.SyntaxServers[9].Value)
	assert.Equal(t, []string{"catppuccin", "tokyo-night", "gruvbox", "nord", "monokai"}, values(c.Themes))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "plugins: [",
			wantErr: "failed to parse catalog",
		},
		{
			name:    "empty list",
			content: "plugins: [{value: a, label: A}]\nsyntax_servers: []\nthemes: [{value: t, label: T}]",
			wantErr: "catalog syntax_servers is empty",
		},
		{
			name:    "missing value",
			content: "plugins: [{label: A}]\nsyntax_servers: [{value: s, label: S}]\nthemes: [{value: t, label: T}]",
			wantErr: "catalog plugins has an option without a value",
		},
		{
			name:    "duplicate value",
			content: "plugins: [{value: a, label: A}]\nsyntax_servers: [{value: s, label: S}]\nthemes: [{value: t, label: T}, {value: t, label: T2}]",
			wantErr: "catalog themes has duplicate values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValuesKeepsOrder(t *testing.T) {
	options := []Option{{Value: "b"}, {Value: "a"}, {Value: "c"}}
	assert.Equal(t, []string{"b", "a", "c"}, values(options))
	assert.Empty(t, values(nil))
}
