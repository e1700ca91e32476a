// Package provider runs segment providers and assembles their output into
// a single prompt sequence.
package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/ribbon/internal/prompt"
	ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"
)

// DefaultTimeout bounds a single provider call.
const DefaultTimeout = 500 * time.Millisecond

// Provider contributes zero or more segments to the prompt. It must only
// write into out, which is private to the call.
type Provider interface {
	Name() string
	Provide(ctx context.Context, pc *prompt.Context, out *prompt.Sequence) error
}

// Func adapts a function into a Provider.
type Func struct {
	ProviderName string
	Fn           func(ctx context.Context, pc *prompt.Context, out *prompt.Sequence) error
}

func (f Func) Name() string { return f.ProviderName }

func (f Func) Provide(ctx context.Context, pc *prompt.Context, out *prompt.Sequence) error {
	return f.Fn(ctx, pc, out)
}

type callResult struct {
	seq *prompt.Sequence
	err error
}

// SafeCall runs p with a bounded timeout. Any error, panic or expiry yields
// a nil sequence and a *errors.ProbeError; segments written before a
// failure are dropped so a provider never contributes half its output.
func SafeCall(ctx context.Context, p Provider, pc *prompt.Context, timeout time.Duration) (*prompt.Sequence, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan callResult, 1)
	go func() {
		seq := pc.NewSequence()
		defer func() {
			if r := recover(); r != nil {
				done <- callResult{err: fmt.Errorf("panic: %v", r)}
			}
		}()

		err := p.Provide(callCtx, pc, seq)
		done <- callResult{seq: seq, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, ribbonerrors.NewProbeError(p.Name(), res.err)
		}
		return res.seq, nil
	case <-callCtx.Done():
		return nil, ribbonerrors.NewProbeError(p.Name(), callCtx.Err())
	}
}
