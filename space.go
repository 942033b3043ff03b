package ospace

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// Space is a thread-safe object space. The zero value is not usable;
// call New. A *Space is the handle: share it freely across goroutines,
// construct several for independent spaces.
type Space struct {
	mu      sync.Mutex
	entries map[reflect.Type]*entry
	closed  bool
	done    chan struct{}

	logf    func(format string, args ...any)
	verbose bool

	WriteCount  atomic.Uint64
	ReadCount   atomic.Uint64
	TakeCount   atomic.Uint64
	WakeCount   atomic.Uint64
	WaiterCount atomic.Int64
}

type Options struct {
	Logf    func(format string, args ...any)
	Verbose bool
}

// New returns a new empty space.
func New(opt Options) *Space {
	return &Space{
		entries: make(map[reflect.Type]*entry),
		done:    make(chan struct{}),
		logf:    opt.Logf,
		verbose: opt.Verbose,
	}
}

// Close shuts the space down: every blocked Read/Take returns ErrClosed,
// and further writes are refused. Stored values remain readable through
// the non-blocking operations of callers already holding the handle;
// the memory is released when the last handle is dropped.
func (sp *Space) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.closed {
		return
	}
	sp.closed = true
	close(sp.done)
}

func (sp *Space) logUndecodable(typ reflect.Type, err error) {
	if sp.logf != nil {
		sp.logf("ospace: skipping undecodable %v candidate: %v", typ, err)
	}
}

func (sp *Space) tracef(format string, args ...any) {
	if sp.verbose && sp.logf != nil {
		sp.logf(format, args...)
	}
}

// typeOf resolves the type parameter of a public operation to the
// nominal identity that keys the registry. Distinct types never share an
// Entry, even with identical encoded shapes.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// entryFor returns the Entry for typ, creating it on first use. Entries
// are never dropped for the lifetime of the space. Must be called with
// sp.mu held.
func (sp *Space) entryFor(typ reflect.Type) *entry {
	e := sp.entries[typ]
	if e == nil {
		e = newEntry(typ)
		sp.entries[typ] = e
	}
	return e
}

// existingEntry returns the Entry for typ without creating one. Must be
// called with sp.mu held.
func (sp *Space) existingEntry(typ reflect.Type) *entry {
	return sp.entries[typ]
}
