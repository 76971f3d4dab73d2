package input

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/atinylittleshell/setup-neovim/internal/preferences"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestPrompter(t *testing.T, keys string) (*TeaPrompter, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	p := NewTeaPrompter(PrompterConfig{
		Input:  strings.NewReader(keys),
		Output: &out,
		Logger: zaptest.NewLogger(t),
	})
	return p, &out
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestTeaPrompterMultiSelect(t *testing.T) {
	p, out := newTestPrompter(t, "j \r")

	values, err := p.MultiSelect(testContext(t), "Select plugins.", testOptions)
	require.NoError(t, err)
	assert.Equal(t, []string{"lualine"}, values)

	plain := ansi.Strip(out.String())
	assert.Contains(t, plain, "Select plugins.")
	assert.Contains(t, plain, "Lualine")
}

func TestTeaPrompterMultiSelectNothingSelected(t *testing.T) {
	p, out := newTestPrompter(t, "\r")

	values, err := p.MultiSelect(testContext(t), "Select plugins.", testOptions)
	require.NoError(t, err)
	assert.NotNil(t, values)
	assert.Empty(t, values)
	assert.Contains(t, ansi.Strip(out.String()), "none")
}

func TestTeaPrompterMultiSelectCancelled(t *testing.T) {
	p, _ := newTestPrompter(t, " \x03")

	values, err := p.MultiSelect(testContext(t), "Select plugins.", testOptions)
	assert.ErrorIs(t, err, preferences.ErrCancelled)
	assert.Nil(t, values)
}

func TestTeaPrompterConfirm(t *testing.T) {
	t.Run("enter keeps yes", func(t *testing.T) {
		p, out := newTestPrompter(t, "\r")

		ok, err := p.Confirm(testContext(t), "ColorSchema")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, ansi.Strip(out.String()), "Yes")
	})

	t.Run("n answers no", func(t *testing.T) {
		p, _ := newTestPrompter(t, "n")

		ok, err := p.Confirm(testContext(t), "ColorSchema")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ctrl+c cancels", func(t *testing.T) {
		p, _ := newTestPrompter(t, "\x03")

		_, err := p.Confirm(testContext(t), "ColorSchema")
		assert.ErrorIs(t, err, preferences.ErrCancelled)
	})
}

func TestTeaPrompterContextCancelled(t *testing.T) {
	// No keys: the prompt waits until the context ends.
	p, _ := newTestPrompter(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Confirm(ctx, "ColorSchema")
	assert.ErrorIs(t, err, preferences.ErrCancelled)
}
