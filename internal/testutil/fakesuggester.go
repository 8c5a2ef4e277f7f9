// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"tododay/internal/suggest"
)

// FakeSuggester is a scripted suggestion source for testing.
type FakeSuggester struct {
	mu    sync.Mutex
	calls int

	// Results are returned in order; the last one repeats.
	// With no results, Suggest returns an unavailable failure.
	Results []suggest.Result

	// Started, if set, receives once per call before blocking.
	Started chan struct{}

	// Block, if set, delays the reply until it is closed.
	Block chan struct{}
}

// Suggest implements session.Suggester.
func (f *FakeSuggester) Suggest(ctx context.Context) suggest.Result {
	f.mu.Lock()
	n := f.calls
	f.calls++
	f.mu.Unlock()

	if f.Started != nil {
		f.Started <- struct{}{}
	}
	if f.Block != nil {
		select {
		case <-f.Block:
		case <-ctx.Done():
			return suggest.Result{Err: &suggest.Failure{Reason: suggest.ReasonTransport, Err: ctx.Err()}}
		}
	}

	if len(f.Results) == 0 {
		return suggest.Result{Err: &suggest.Failure{Reason: suggest.ReasonUnavailable, Err: suggest.ErrUnavailable}}
	}
	if n >= len(f.Results) {
		n = len(f.Results) - 1
	}
	return f.Results[n]
}

// Calls returns how many times Suggest was called.
func (f *FakeSuggester) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FakeGenerator is a suggest.Generator returning fixed output.
type FakeGenerator struct {
	Text string
	Err  error
}

// Generate implements suggest.Generator.
func (g *FakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.Text, g.Err
}
