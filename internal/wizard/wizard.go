// Package wizard runs one setup session: collect preferences, request a
// configuration and print it.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atinylittleshell/setup-neovim/internal/catalog"
	"github.com/atinylittleshell/setup-neovim/internal/core"
	"github.com/atinylittleshell/setup-neovim/internal/preferences"
	"github.com/atinylittleshell/setup-neovim/internal/provider"
	"github.com/atinylittleshell/setup-neovim/internal/render"
	"github.com/atinylittleshell/setup-neovim/internal/request"
	"go.uber.org/zap"
)

const (
	MessageCancelled = "Operation cancelled."
	MessageDone      = "You're all set!"
)

// Options holds configuration for creating a Wizard.
type Options struct {
	// Prompter asks the questions. Required.
	Prompter preferences.Prompter

	// Generator produces the configuration text. Required.
	Generator provider.Generator

	// Catalog lists the offered choices. If nil, catalog.Default() is used.
	Catalog *catalog.Catalog

	// Output receives banners, the spinner and the answer. If nil,
	// os.Stdout is used.
	Output io.Writer

	// Logger for diagnostics. If nil, a no-op logger is used.
	Logger *zap.Logger
}

// Wizard is a single interactive session.
type Wizard struct {
	prompter  preferences.Prompter
	generator provider.Generator
	catalog   catalog.Catalog
	output    io.Writer
	logger    *zap.Logger
}

// New validates opts and creates a Wizard.
func New(opts Options) (*Wizard, error) {
	if opts.Prompter == nil {
		return nil, errors.New("prompter is required")
	}
	if opts.Generator == nil {
		return nil, errors.New("generator is required")
	}

	w := &Wizard{
		prompter:  opts.Prompter,
		generator: opts.Generator,
		output:    opts.Output,
		logger:    opts.Logger,
	}
	if opts.Catalog != nil {
		if err := opts.Catalog.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog: %w", err)
		}
		w.catalog = *opts.Catalog
	} else {
		w.catalog = catalog.Default()
	}
	if w.output == nil {
		w.output = os.Stdout
	}
	if w.logger == nil {
		w.logger = zap.NewNop()
	}

	return w, nil
}

// Run executes the session. A cancelled prompt ends the run quietly and a
// failed generation is reported on screen; neither is returned as an error.
func (w *Wizard) Run(ctx context.Context) error {
	render.RenderIntro(w.output, core.AppName)

	prefs, err := preferences.Collect(ctx, w.prompter, w.catalog, w.logger)
	if err != nil {
		if errors.Is(err, preferences.ErrCancelled) {
			render.RenderCancel(w.output, MessageCancelled)
			w.logger.Info("wizard cancelled")
			return nil
		}
		return fmt.Errorf("failed to collect preferences: %w", err)
	}

	prompt := request.BuildPrompt(prefs)
	if err := request.Send(ctx, w.generator, prompt, w.output, w.logger); err != nil {
		w.logger.Warn("continuing after failed generation", zap.Error(err))
	}

	render.RenderOutro(w.output, MessageDone)
	return nil
}
