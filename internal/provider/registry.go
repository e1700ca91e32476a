package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/ribbon/internal/logger"
	"github.com/alexisbeaulieu97/ribbon/internal/prompt"
	ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"
)

// Registry holds providers in registration order, which is also the order
// their segments appear in.
type Registry struct {
	providers []Provider
	names     map[string]struct{}
	tail      Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register appends p.
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return ribbonerrors.NewProbeError("", fmt.Errorf("provider is nil"))
	}

	name := p.Name()
	if _, exists := r.names[name]; exists {
		return ribbonerrors.NewProbeError(name, fmt.Errorf("provider already registered"))
	}

	r.names[name] = struct{}{}
	r.providers = append(r.providers, p)
	return nil
}

// SetTail installs p as the closing provider. It runs after every other
// provider, outside the timeout, and its segments always come last.
func (r *Registry) SetTail(p Provider) error {
	if p == nil {
		return ribbonerrors.NewProbeError("", fmt.Errorf("provider is nil"))
	}
	if _, exists := r.names[p.Name()]; exists {
		return ribbonerrors.NewProbeError(p.Name(), fmt.Errorf("provider already registered"))
	}
	r.tail = p
	return nil
}

// Names lists registered provider names in order, the tail last.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.Len())
	for _, p := range r.providers {
		names = append(names, p.Name())
	}
	if r.tail != nil {
		names = append(names, r.tail.Name())
	}
	return names
}

// Len returns the number of registered providers, including the tail.
func (r *Registry) Len() int {
	if r.tail != nil {
		return len(r.providers) + 1
	}
	return len(r.providers)
}

// RunOptions tunes Run.
type RunOptions struct {
	Parallel bool
	Timeout  time.Duration
	Logger   *logger.Logger
}

// Result is the assembled prompt plus every swallowed provider failure.
type Result struct {
	Sequence    *prompt.Sequence
	Diagnostics []error
}

// Run calls every provider through SafeCall and concatenates their output
// in registration order, whether or not they ran concurrently.
func (r *Registry) Run(ctx context.Context, pc *prompt.Context, opts RunOptions) Result {
	if ctx == nil {
		ctx = context.Background()
	}

	outputs := make([]*prompt.Sequence, len(r.providers))
	errs := make([]error, len(r.providers))

	if opts.Parallel {
		var wg sync.WaitGroup
		for idx, p := range r.providers {
			wg.Add(1)
			go func(idx int, p Provider) {
				defer wg.Done()
				outputs[idx], errs[idx] = SafeCall(ctx, p, pc, opts.Timeout)
			}(idx, p)
		}
		wg.Wait()
	} else {
		for idx, p := range r.providers {
			outputs[idx], errs[idx] = SafeCall(ctx, p, pc, opts.Timeout)
		}
	}

	result := Result{Sequence: pc.NewSequence()}
	for idx, p := range r.providers {
		if err := errs[idx]; err != nil {
			opts.Logger.WithFields(map[string]any{"provider": p.Name()}).
				DebugErr(err, "provider skipped")
			result.Diagnostics = append(result.Diagnostics, err)
			continue
		}
		result.Sequence.Extend(outputs[idx])
	}

	if r.tail != nil {
		seq, err := callTail(ctx, r.tail, pc)
		if err != nil {
			opts.Logger.WithFields(map[string]any{"provider": r.tail.Name()}).
				DebugErr(err, "provider skipped")
			result.Diagnostics = append(result.Diagnostics, err)
		} else {
			result.Sequence.Extend(seq)
		}
	}
	return result
}

// callTail runs p synchronously without a deadline, still converting a
// panic or error into a ProbeError.
func callTail(ctx context.Context, p Provider, pc *prompt.Context) (seq *prompt.Sequence, err error) {
	defer func() {
		if r := recover(); r != nil {
			seq, err = nil, ribbonerrors.NewProbeError(p.Name(), fmt.Errorf("panic: %v", r))
		}
	}()

	seq = pc.NewSequence()
	if err := p.Provide(ctx, pc, seq); err != nil {
		return nil, ribbonerrors.NewProbeError(p.Name(), err)
	}
	return seq, nil
}
