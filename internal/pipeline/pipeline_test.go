package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func appendStage(name string) StageFunc {
	return func(ctx context.Context, state State) (State, error) {
		order, _ := state["order"].([]string)
		state["order"] = append(order, name)
		return state, nil
	}
}

func TestRegister(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("tokenize", appendStage("tokenize")); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := r.Register("", appendStage("x")); err == nil {
		t.Error("Register() with empty name: expected error")
	}
	if err := r.Register("nilfn", nil); err == nil {
		t.Error("Register() with nil function: expected error")
	}
	if err := r.Register("tokenize", appendStage("tokenize")); err == nil {
		t.Error("Register() duplicate name: expected error")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRunOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"first", "second", "third"} {
		if err := r.Register(name, appendStage(name)); err != nil {
			t.Fatalf("Register(%q) error: %v", name, err)
		}
	}

	state, err := r.Run(context.Background(), []string{"first", "second", "third"}, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	order, _ := state["order"].([]string)
	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("ran %d stages, want %d: %v", len(order), len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("stage %d = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestRunUnknownStage(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("known", appendStage("known")); err != nil {
		t.Fatal(err)
	}

	_, err := r.Run(context.Background(), []string{"known", "missing"}, nil)
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("Run() with unknown stage: err = %v, want it to name the stage", err)
	}
}

func TestRunStageError(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry()
	if err := r.Register("failing", func(ctx context.Context, state State) (State, error) {
		return nil, boom
	}); err != nil {
		t.Fatal(err)
	}

	_, err := r.Run(context.Background(), []string{"failing"}, nil)
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want wrapped boom", err)
	}
}

func TestRunNilState(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("vanish", func(ctx context.Context, state State) (State, error) {
		return nil, nil
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Run(context.Background(), []string{"vanish"}, nil); err == nil {
		t.Error("Run() with a nil-state stage: expected error")
	}
}

func TestRunCanceledContext(t *testing.T) {
	r := NewRegistry()
	ran := false
	if err := r.Register("never", func(ctx context.Context, state State) (State, error) {
		ran = true
		return state, nil
	}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, []string{"never"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() on canceled context: err = %v, want context.Canceled", err)
	}
	if ran {
		t.Error("stage ran despite canceled context")
	}
}

func TestRunInitialState(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("double", func(ctx context.Context, state State) (State, error) {
		n, _ := state["n"].(int)
		state["n"] = n * 2
		return state, nil
	}); err != nil {
		t.Fatal(err)
	}

	state, err := r.Run(context.Background(), []string{"double", "double"}, State{"n": 3})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if n, _ := state["n"].(int); n != 12 {
		t.Errorf("n = %d, want 12", n)
	}
}
