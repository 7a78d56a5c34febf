package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerGlyphs = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// spinner is the progress line shown on stderr while a generation runs:
// an animated glyph, the seed, and the elapsed time. Dense Delaunay
// scatters and large rasters take seconds, so the line keeps slow runs
// from looking stuck.
type spinner struct {
	seed    uint64
	begin   time.Time
	cancel  context.CancelFunc
	stopped chan struct{}

	mu    sync.Mutex
	width int
}

// startSpinner launches the progress line. Finish it with Done or Fail;
// cancelling ctx clears the line as well.
func startSpinner(ctx context.Context, seed uint64) *spinner {
	ctx, cancel := context.WithCancel(ctx)
	s := &spinner{
		seed:    seed,
		begin:   time.Now(),
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	go s.run(ctx)
	return s
}

func (s *spinner) run(ctx context.Context) {
	defer close(s.stopped)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			s.clear()
			return
		case <-tick.C:
			s.draw(frame)
		}
	}
}

func (s *spinner) draw(frame int) {
	glyph := string(spinnerGlyphs[frame%len(spinnerGlyphs)])
	text := fmt.Sprintf("generating seed %d (%.0fs)", s.seed, time.Since(s.begin).Seconds())

	s.mu.Lock()
	defer s.mu.Unlock()
	if w := len([]rune(text)) + 2; w > s.width {
		s.width = w
	}
	fmt.Fprintf(os.Stderr, "\r%s %s", styleAccent.Render(glyph), styleMuted.Render(text))
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", s.width))
}

// Done stops the animation and clears the line.
func (s *spinner) Done() {
	s.cancel()
	<-s.stopped
}

// Fail stops the animation and prints an error line in its place.
func (s *spinner) Fail(format string, args ...any) {
	s.Done()
	printError(format, args...)
}
