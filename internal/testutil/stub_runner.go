package testutil

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/RevCBH/szmer/internal/runner"
)

// StubRunner is a scripted runner.Runner. Responses are keyed by the full
// command line ("program arg1 arg2") and consumed in order; defaults answer
// every call once the queue is empty.
type StubRunner struct {
	mu       sync.Mutex
	stubs    map[string][]stubResponse
	defaults map[string]stubResponse
	paths    map[string]string
	calls    []string
}

type stubResponse struct {
	out string
	err error
}

func NewStubRunner() *StubRunner {
	return &StubRunner{
		stubs:    make(map[string][]stubResponse),
		defaults: make(map[string]stubResponse),
		paths:    make(map[string]string),
	}
}

func (s *StubRunner) Stub(cmdline string, out string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[cmdline] = append(s.stubs[cmdline], stubResponse{out: out, err: err})
}

func (s *StubRunner) StubDefault(cmdline string, out string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults[cmdline] = stubResponse{out: out, err: err}
}

// StubPath makes LookPath(name) succeed with path.
func (s *StubRunner) StubPath(name, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths[name] = path
}

func (s *StubRunner) Exec(ctx context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	s.mu.Lock()
	s.calls = append(s.calls, key)
	queue := s.stubs[key]
	if len(queue) == 0 {
		if resp, ok := s.defaults[key]; ok {
			s.mu.Unlock()
			return resp.out, resp.err
		}
		s.mu.Unlock()
		return "", fmt.Errorf("unexpected call: %s", key)
	}
	resp := queue[0]
	s.stubs[key] = queue[1:]
	s.mu.Unlock()
	return resp.out, resp.err
}

func (s *StubRunner) LookPath(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if path, ok := s.paths[name]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func (s *StubRunner) CallsFor(cmdline string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, call := range s.calls {
		if call == cmdline {
			count++
		}
	}
	return count
}

// Calls returns every command line executed so far, in order.
func (s *StubRunner) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// ExitErr builds the error a real runner returns for a non-zero exit.
func ExitErr(cmdline string, code int, stderr string) error {
	fields := strings.Fields(cmdline)
	var args []string
	if len(fields) > 1 {
		args = fields[1:]
	}
	program := ""
	if len(fields) > 0 {
		program = fields[0]
	}
	return &runner.ExitError{
		Program:  program,
		Args:     args,
		ExitCode: code,
		Stderr:   stderr,
	}
}
