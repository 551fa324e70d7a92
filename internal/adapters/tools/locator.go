// Package tools implements executable discovery with process-lifetime memoization.
package tools

import (
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
)

var _ ports.Locator = (*Locator)(nil)

// LookupFunc resolves a single executable name to an absolute path.
// It matches the signature of exec.LookPath so tests can count invocations.
type LookupFunc func(name string) (string, error)

// Locator implements ports.Locator over a lookup function.
//
// Handles are memoized per candidate name set: repeated resolution of the
// same names returns the recorded handle without touching the filesystem.
// Reset discards the memoization, which is the only way to force a
// re-resolution within one process.
type Locator struct {
	lookup LookupFunc

	mu      sync.Mutex
	handles map[string]domain.ToolHandle
}

// NewLocator creates a Locator backed by exec.LookPath.
func NewLocator() *Locator {
	return NewLocatorWithLookup(exec.LookPath)
}

// NewLocatorWithLookup creates a Locator with a custom lookup function.
func NewLocatorWithLookup(lookup LookupFunc) *Locator {
	return &Locator{
		lookup:  lookup,
		handles: make(map[string]domain.ToolHandle),
	}
}

// Resolve tries candidate names in order; the first hit on the search path
// wins. A handle with Found=false is returned when none resolve: deciding
// whether that is fatal belongs to the caller.
func (l *Locator) Resolve(names ...string) domain.ToolHandle {
	key := strings.Join(names, "\x00")

	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.handles[key]; ok {
		return h
	}

	h := domain.ToolHandle{}
	if len(names) > 0 {
		h.Name = names[0]
	}
	for _, name := range names {
		path, err := l.lookup(name)
		if err == nil {
			h = domain.ToolHandle{Name: name, Path: path, Found: true}
			break
		}
	}

	l.handles[key] = h
	return h
}

// Reset clears the memoized handles.
func (l *Locator) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handles = make(map[string]domain.ToolHandle)
}
