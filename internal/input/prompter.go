package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atinylittleshell/setup-neovim/internal/catalog"
	"github.com/atinylittleshell/setup-neovim/internal/preferences"
	"github.com/atinylittleshell/setup-neovim/internal/render"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// PrompterConfig holds configuration for creating a TeaPrompter.
type PrompterConfig struct {
	// Input is read for key presses. If nil, os.Stdin is used.
	Input io.Reader

	// Output receives the prompt views and answer summaries. If nil,
	// os.Stdout is used.
	Output io.Writer

	// KeyMap provides key bindings. If nil, DefaultKeyMap is used.
	KeyMap *KeyMap

	// Logger for debug output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// TeaPrompter implements preferences.Prompter with one Bubble Tea program
// per question.
type TeaPrompter struct {
	input  io.Reader
	output io.Writer
	keymap *KeyMap
	logger *zap.Logger
}

var _ preferences.Prompter = (*TeaPrompter)(nil)

// NewTeaPrompter creates a prompter from cfg.
func NewTeaPrompter(cfg PrompterConfig) *TeaPrompter {
	p := &TeaPrompter{
		input:  cfg.Input,
		output: cfg.Output,
		keymap: cfg.KeyMap,
		logger: cfg.Logger,
	}
	if p.input == nil {
		p.input = os.Stdin
	}
	if p.output == nil {
		p.output = os.Stdout
	}
	if p.keymap == nil {
		p.keymap = DefaultKeyMap()
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p
}

// MultiSelect implements preferences.Prompter.
func (p *TeaPrompter) MultiSelect(ctx context.Context, message string, options []catalog.Option) ([]string, error) {
	final, err := p.run(ctx, NewMultiSelect(message, options, p.keymap))
	if err != nil {
		return nil, err
	}

	m, ok := final.(MultiSelectModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	if m.Result() != ResultSubmit {
		return nil, p.cancelled(message)
	}

	render.RenderAnswer(p.output, message, render.SummarizeSelection(m.Labels()))
	p.logger.Debug("multi-select answered", zap.String("message", message), zap.Strings("values", m.Values()))
	return m.Values(), nil
}

// Confirm implements preferences.Prompter.
func (p *TeaPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	final, err := p.run(ctx, NewConfirm(message, p.keymap))
	if err != nil {
		return false, err
	}

	m, ok := final.(ConfirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type %T", final)
	}
	if m.Result() != ResultSubmit {
		return false, p.cancelled(message)
	}

	render.RenderAnswer(p.output, message, render.SummarizeConfirm(m.Value()))
	p.logger.Debug("confirm answered", zap.String("message", message), zap.Bool("value", m.Value()))
	return m.Value(), nil
}

// run executes model until it quits. A killed program (context cancelled)
// counts as a user cancellation.
func (p *TeaPrompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil, p.cancelled("program killed")
		}
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}

	return final, nil
}

func (p *TeaPrompter) cancelled(at string) error {
	p.logger.Info("prompt cancelled", zap.String("at", at))
	return preferences.ErrCancelled
}
