package render

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// SpinnerFrames contains the braille spinner animation frames
var SpinnerFrames = spinner.MiniDot.Frames

// SpinnerInterval is the delay between two frames
var SpinnerInterval = spinner.MiniDot.FPS

// Spinner manages an animated long-running-operation indicator.
type Spinner struct {
	writer   io.Writer
	frames   []string
	interval time.Duration
	mu       sync.Mutex
	running  bool
	message  string
	cancel   context.CancelFunc // Stops the animation goroutine
	done     chan struct{}      // Closed once the goroutine has cleared the line
}

// NewSpinner creates a new spinner with default frames.
func NewSpinner(writer io.Writer) *Spinner {
	return &Spinner{
		writer:   writer,
		frames:   SpinnerFrames,
		interval: SpinnerInterval,
	}
}

// SetMessage sets the message to display after the spinner
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// Start begins the spinner animation. Starting a running spinner is a no-op.
func (s *Spinner) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.running = true
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
}

// halt stops the animation and blocks until the line has been cleared.
// It is safe to call on a spinner that was never started.
func (s *Spinner) halt() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Stop halts the animation and replaces it with a final status line.
func (s *Spinner) Stop(message string, success bool) {
	s.halt()

	symbol := SymbolSuccess
	if !success {
		symbol = SymbolError
	}
	fmt.Fprintf(s.writer, "%s %s\n", StyledSymbol(symbol, success), message)
}

// run is the internal goroutine that animates the spinner
func (s *Spinner) run(ctx context.Context, done chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	frameIndex := 0

	s.renderFrame(frameIndex)

	for {
		select {
		case <-ctx.Done():
			s.clearLine()
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
			close(done)
			return
		case <-ticker.C:
			frameIndex = (frameIndex + 1) % len(s.frames)
			s.renderFrame(frameIndex)
		}
	}
}
// renderFrame renders a single spinner frame with optional message
func (s *Spinner) renderFrame(frameIndex int) {
	s.mu.Lock()
	message := s.message
	s.mu.Unlock()

	styledFrame := SpinnerStyle.Render(s.frames[frameIndex])

	// Move cursor to beginning of line, clear line, render frame
	if message != "" {
		fmt.Fprintf(s.writer, "\r\033[K%s %s", styledFrame, message)
	} else {
		fmt.Fprintf(s.writer, "\r\033[K%s", styledFrame)
	}
}

// clearLine clears the current line
func (s *Spinner) clearLine() {
	fmt.Fprintf(s.writer, "\r\033[K")
}

