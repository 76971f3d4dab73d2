package request

import (
	"context"
	"fmt"
	"io"

	"github.com/atinylittleshell/setup-neovim/internal/provider"
	"github.com/atinylittleshell/setup-neovim/internal/render"
	"go.uber.org/zap"
)

// Indicator messages.
const (
	MessageGenerating = "Generating Config ...."
	MessageGenerated  = "Config generated!"
	MessageFailed     = "Failed to generate config."
)

// Send issues exactly one generation request for prompt while a spinner
// runs. On success the formatted text is written to out. On failure the
// spinner reports it, the raw error is written to out and returned; no
// formatted output is produced and nothing is retried.
func Send(ctx context.Context, gen provider.Generator, prompt string, out io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	spinner := render.NewSpinner(out)
	spinner.SetMessage(MessageGenerating)
	spinner.Start(ctx)

	text, err := generate(ctx, gen, prompt)
	if err != nil {
		spinner.Stop(MessageFailed, false)
		fmt.Fprintln(out, err)
		logger.Error("generation failed", zap.String("provider", gen.Name()), zap.Error(err))
		return err
	}

	spinner.Stop(MessageGenerated, true)
	fmt.Fprintln(out, render.FormatOutput(text))
	logger.Info("generation succeeded", zap.String("provider", gen.Name()), zap.Int("length", len(text)))

	return nil
}

// generate turns a panicking provider into an ordinary error so every
// failure takes the same path.
func generate(ctx context.Context, gen provider.Generator, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("generation failed: %v", r)
		}
	}()

	return gen.Generate(ctx, prompt)
}
