package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atinylittleshell/setup-neovim/internal/config"
	"github.com/atinylittleshell/setup-neovim/internal/core"
	"github.com/atinylittleshell/setup-neovim/internal/input"
	"github.com/atinylittleshell/setup-neovim/internal/provider"
	"github.com/atinylittleshell/setup-neovim/internal/styles"
	"github.com/atinylittleshell/setup-neovim/internal/wizard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var BUILD_VERSION = "dev"

var errNotTerminal = errors.New("setup-neovim must be run in an interactive terminal")

// isTerminal reports whether f is attached to a terminal.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var showVersion bool

	cmd := &cobra.Command{
		Use:           core.AppName,
		Short:         "Generate a Neovim configuration from a few questions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), styles.VERSION(BUILD_VERSION))
				return nil
			}

			paths, err := core.DefaultPaths()
			if err != nil {
				return err
			}

			cfg, err := config.Load(".env", paths.EnvFile)
			if err != nil {
				return err
			}

			logger, err := initializeLogger(cfg, paths.LogFile)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync() // Flush any buffered log entries

			logger.Info("-------- new setup-neovim session --------",
				zap.Any("args", os.Args),
				zap.String("version", BUILD_VERSION),
			)

			if !isTerminal(os.Stdin) {
				logger.Error("stdin is not a terminal")
				return errNotTerminal
			}

			err = run(cmd.Context(), cfg, logger, os.Stdin, cmd.OutOrStdout())
			if err != nil {
				logger.Error("unhandled error", zap.Error(err))
				fmt.Fprintln(os.Stderr, styles.LOG("See "+paths.LogFile+" for details."))
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "display build version")

	return cmd
}

// run wires the provider and prompts into a wizard and executes it.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	generator := provider.NewOpenAIProvider(provider.OpenAIOptions{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Logger:  logger,
	})
	logger.Info("provider configured",
		zap.String("provider", generator.Name()),
		zap.String("model", generator.Model()),
		zap.String("baseURL", cfg.BaseURL),
	)

	prompter := input.NewTeaPrompter(input.PrompterConfig{
		Input:  in,
		Output: out,
		Logger: logger,
	})

	w, err := wizard.New(wizard.Options{
		Prompter:  prompter,
		Generator: generator,
		Output:    out,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	return w.Run(ctx)
}

func initializeLogger(cfg *config.Config, logFile string) (*zap.Logger, error) {
	logLevel := cfg.ZapLevel()
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	// Logs only go to file to avoid interfering with the Bubble Tea UI.
	// Use `tail -f ~/.setup-neovim/setup-neovim.log` to follow them.
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		logFile,
	}

	return loggerConfig.Build()
}
