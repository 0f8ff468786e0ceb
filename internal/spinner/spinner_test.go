package spinner

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer so the spinner goroutine and the test
// can touch it concurrently.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerStartStop(t *testing.T) {
	out := &syncBuffer{}
	s := New(out, "working...")

	if s.Running() {
		t.Error("Running() = true before Start")
	}

	s.Start()
	if !s.Running() {
		t.Error("Running() = false after Start")
	}

	time.Sleep(250 * time.Millisecond)
	s.Stop()

	if s.Running() {
		t.Error("Running() = true after Stop")
	}
	if !strings.Contains(out.String(), "working...") {
		t.Errorf("output %q does not contain the message", out.String())
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := New(&syncBuffer{}, "idle")
	s.Stop() // must not panic or block
	if s.Running() {
		t.Error("Running() = true on a never-started spinner")
	}
}

func TestSpinnerDoubleStart(t *testing.T) {
	out := &syncBuffer{}
	s := New(out, "busy")

	s.Start()
	s.Start() // no-op
	s.Stop()
	s.Stop() // no-op

	if s.Running() {
		t.Error("Running() = true after Stop")
	}
}

func TestSpinnerRestarts(t *testing.T) {
	out := &syncBuffer{}
	s := New(out, "again")

	for i := 0; i < 2; i++ {
		s.Start()
		time.Sleep(150 * time.Millisecond)
		s.Stop()
	}

	if s.Running() {
		t.Error("Running() = true after final Stop")
	}
	if !strings.Contains(out.String(), "again") {
		t.Errorf("output %q does not contain the message", out.String())
	}
}
