// Package spinner provides a small terminal progress indicator shown
// while slow operations (such as LLM fallback requests) are in flight.
package spinner

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// Spinner animates a short message on a single terminal line until
// stopped. All methods are safe for concurrent use.
type Spinner struct {
	out      io.Writer
	message  string
	interval time.Duration

	mu      sync.Mutex
	done    chan struct{}
	stopped chan struct{}
	running bool
}

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// New creates a spinner writing to out.
func New(out io.Writer, message string) *Spinner {
	return &Spinner{
		out:      out,
		message:  message,
		interval: 100 * time.Millisecond,
	}
}

// Start begins the animation. Starting an already-running spinner is a
// no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.done = make(chan struct{})
	s.stopped = make(chan struct{})

	go s.loop(s.done, s.stopped)
}

// Stop halts the animation and clears the line. Stopping a stopped
// spinner is a no-op.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.done)
	stopped := s.stopped
	s.mu.Unlock()

	<-stopped

	if f, ok := s.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(s.out, "\r\033[2K")
	} else {
		fmt.Fprint(s.out, "\r")
	}
}

// Running reports whether the spinner is currently animating.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Spinner) loop(done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			fmt.Fprintf(s.out, "\r%s %s", frames[frame%len(frames)], s.message)
			frame++
		}
	}
}
