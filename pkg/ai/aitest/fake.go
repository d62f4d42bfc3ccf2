// Package aitest provides a scripted GraphAIClient for tests.
package aitest

import (
	"context"
	"sync"

	"github.com/aayushsoam1/cogni-mind/pkg/ai"
)

// Call is one recorded GenerateCompletion invocation.
type Call struct {
	Prompt  string
	Options ai.GenerateOptions
}

// FakeClient answers every completion with Response or Err.
//
// When Gate is not nil, GenerateCompletion blocks until Gate is closed or
// receives a value, or until ctx is done. Started, when not nil, receives one
// value per call before it blocks.
type FakeClient struct {
	Response string
	Err      error
	Gate     chan struct{}
	Started  chan struct{}

	mu      sync.Mutex
	calls   []Call
	metrics ai.MetricsRecorder
}

var _ ai.GraphAIClient = (*FakeClient)(nil)

func (f *FakeClient) GenerateCompletion(ctx context.Context, prompt string, opts ...ai.GenerateOption) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Prompt: prompt, Options: ai.ApplyOptions(ai.GenerateOptions{}, opts...)})
	f.mu.Unlock()

	if f.Started != nil {
		f.Started <- struct{}{}
	}
	if f.Gate != nil {
		select {
		case <-f.Gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	f.metrics.Record(ai.ModelMetrics{})
	return f.Response, f.Err
}

func (f *FakeClient) LoadModel(ctx context.Context, opts ...ai.GenerateOption) error {
	return nil
}

func (f *FakeClient) ResetMetrics() {
	f.metrics.Reset()
}

func (f *FakeClient) GetMetrics() ai.ModelMetrics {
	return f.metrics.Snapshot()
}

// Calls returns a copy of the recorded calls.
func (f *FakeClient) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}
