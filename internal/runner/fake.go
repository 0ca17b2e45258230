package runner

import (
	"context"
	"fmt"
	"sync"
)

// Response is a scripted result for one command line.
type Response struct {
	Out []byte
	Err error

	// Block makes the call wait for context cancellation and return its error.
	Block bool
}

// FakeRunner implements Runner with scripted responses keyed by command line
// (see CommandLine). Unscripted commands fail with ErrNotFound.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []string
}

// NewFakeRunner creates a FakeRunner with no scripted commands.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string]Response)}
}

// Set scripts stdout for a command line.
func (f *FakeRunner) Set(cmdline string, out string) {
	f.SetResponse(cmdline, Response{Out: []byte(out)})
}

// SetResponse scripts an arbitrary response for a command line.
func (f *FakeRunner) SetResponse(cmdline string, resp Response) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmdline] = resp
}

// Output records the call and returns the scripted response.
func (f *FakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	line := CommandLine(name, args...)

	f.mu.Lock()
	f.calls = append(f.calls, line)
	resp, ok := f.responses[line]
	f.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if resp.Block {
		<-ctx.Done()
		return nil, fmt.Errorf("%s: %w", line, ctx.Err())
	}
	return resp.Out, resp.Err
}

// Calls returns the command lines run so far, in order.
func (f *FakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many times cmdline was run.
func (f *FakeRunner) CallCount(cmdline string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == cmdline {
			n++
		}
	}
	return n
}
