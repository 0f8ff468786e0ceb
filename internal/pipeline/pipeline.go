// Package pipeline executes named processing stages in sequence, threading
// a shared state map from one stage to the next.
//
// Stages are registered under a name at startup and resolved through the
// registry at run time; there is no filesystem-based dynamic loading.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
)

// State is the mutable context passed between stages.
type State map[string]any

// StageFunc is one pipeline stage. It receives the accumulated state and
// returns the state for the next stage.
type StageFunc func(ctx context.Context, state State) (State, error)

// Registry maps stage names to their functions. Register everything
// before calling Run; the registry itself does no locking.
type Registry struct {
	stages map[string]StageFunc
}

// NewRegistry creates an empty stage registry.
func NewRegistry() *Registry {
	return &Registry{stages: make(map[string]StageFunc)}
}

// Register adds a stage under the given name. Registering an empty name,
// a nil function, or a duplicate name is an error.
func (r *Registry) Register(name string, fn StageFunc) error {
	if name == "" {
		return fmt.Errorf("stage name must not be empty")
	}
	if fn == nil {
		return fmt.Errorf("stage %q has a nil function", name)
	}
	if _, exists := r.stages[name]; exists {
		return fmt.Errorf("stage %q is already registered", name)
	}
	r.stages[name] = fn
	return nil
}

// Len reports how many stages are registered.
func (r *Registry) Len() int {
	return len(r.stages)
}

// Run executes the named stages in order, starting from initial (an empty
// state if nil). An unknown stage name, a stage error, or a stage
// returning nil state aborts the pipeline.
func (r *Registry) Run(ctx context.Context, names []string, initial State) (State, error) {
	state := initial
	if state == nil {
		state = State{}
	}

	slog.Debug("starting pipeline", "stages", len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline canceled before stage %q: %w", name, err)
		}

		fn, ok := r.stages[name]
		if !ok {
			return nil, fmt.Errorf("unknown pipeline stage %q", name)
		}

		next, err := fn(ctx, state)
		if err != nil {
			return nil, fmt.Errorf("stage %q failed: %w", name, err)
		}
		if next == nil {
			return nil, fmt.Errorf("stage %q returned nil state", name)
		}

		state = next
		slog.Debug("stage completed", "stage", name, "keys", len(state))
	}

	return state, nil
}
