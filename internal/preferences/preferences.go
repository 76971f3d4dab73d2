// Package preferences collects the user's Neovim setup choices.
package preferences

import (
	"context"
	"errors"

	"github.com/atinylittleshell/setup-neovim/internal/catalog"
	"go.uber.org/zap"
)

// ErrCancelled is returned by a Prompter when the user aborts a prompt.
var ErrCancelled = errors.New("operation cancelled")

// Prompt messages, in the order they are asked.
const (
	MessagePlugins        = "Select plugins."
	MessageSyntax         = "Treesitter (faster and more accurate syntax highlighting)"
	MessageSyntaxServers  = "Pick TS Servers"
	MessageColorTheme     = "ColorSchema"
	MessageColorThemeList = "Pick your favorite color"
)

// Prompter asks the user questions. Implementations return ErrCancelled
// (possibly wrapped) when the user cancels.
type Prompter interface {
	// MultiSelect returns the values of the chosen options in catalog order.
	// The result may be empty.
	MultiSelect(ctx context.Context, message string, options []catalog.Option) ([]string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, message string) (bool, error)
}

// Set is the record of one run's answers. SyntaxServers and Themes are nil
// unless their gate is true, and non-nil (possibly empty) when it is.
type Set struct {
	Plugins                 []string
	WantsSyntaxHighlighting bool
	SyntaxServers           []string
	WantsColorTheme         bool
	Themes                  []string
}

// Collect runs the prompt sequence. Any prompt error aborts the whole run
// and no partial Set is returned.
func Collect(ctx context.Context, p Prompter, c catalog.Catalog, logger *zap.Logger) (Set, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var s Set
	var err error

	s.Plugins, err = selectAll(ctx, p, MessagePlugins, c.Plugins)
	if err != nil {
		return Set{}, err
	}

	s.WantsSyntaxHighlighting, err = p.Confirm(ctx, MessageSyntax)
	if err != nil {
		return Set{}, err
	}

	s.SyntaxServers, err = selectIf(ctx, p, s.WantsSyntaxHighlighting, MessageSyntaxServers, c.SyntaxServers)
	if err != nil {
		return Set{}, err
	}

	s.WantsColorTheme, err = p.Confirm(ctx, MessageColorTheme)
	if err != nil {
		return Set{}, err
	}

	s.Themes, err = selectIf(ctx, p, s.WantsColorTheme, MessageColorThemeList, c.Themes)
	if err != nil {
		return Set{}, err
	}

	logger.Debug("preferences collected",
		zap.Strings("plugins", s.Plugins),
		zap.Bool("syntax", s.WantsSyntaxHighlighting),
		zap.Strings("syntaxServers", s.SyntaxServers),
		zap.Bool("colorTheme", s.WantsColorTheme),
		zap.Strings("themes", s.Themes),
	)

	return s.clone(), nil
}

// selectAll always prompts and never returns a nil slice on success.
func selectAll(ctx context.Context, p Prompter, message string, options []catalog.Option) ([]string, error) {
	chosen, err := p.MultiSelect(ctx, message, options)
	if err != nil {
		return nil, err
	}
	if chosen == nil {
		chosen = []string{}
	}
	return chosen, nil
}

// selectIf prompts only when gate is true; otherwise the field stays absent.
func selectIf(ctx context.Context, p Prompter, gate bool, message string, options []catalog.Option) ([]string, error) {
	if !gate {
		return nil, nil
	}
	return selectAll(ctx, p, message, options)
}

// clone detaches the Set from slices owned by the Prompter.
func (s Set) clone() Set {
	out := s
	out.Plugins = cloneKeepNil(s.Plugins)
	out.SyntaxServers = cloneKeepNil(s.SyntaxServers)
	out.Themes = cloneKeepNil(s.Themes)
	return out
}

func cloneKeepNil(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}

// HasSyntaxServers reports whether the syntax server list is present.
func (s Set) HasSyntaxServers() bool {
	return s.WantsSyntaxHighlighting && s.SyntaxServers != nil
}

// HasThemes reports whether the theme list is present.
func (s Set) HasThemes() bool {
	return s.WantsColorTheme && s.Themes != nil
}
