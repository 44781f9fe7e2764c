// ABOUTME: Bounded ring buffer of captured runtime failures.
// ABOUTME: Panics become {message, stack} entries; oldest entries are evicted at 99.
package logbuf

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxEntries bounds the buffer; the oldest entry is evicted first.
const MaxEntries = 99

// Entry is one captured failure.
type Entry struct {
	ID      uuid.UUID
	Message string
	Stack   []string
	At      time.Time
}

// Buffer collects failures for the in-app log viewer. Safe for use from
// multiple goroutines.
type Buffer struct {
	mu      sync.Mutex
	entries []Entry
	onPush  func(Entry)
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Notify registers a callback invoked after each push, used to surface a
// non-blocking notification. Only one callback is kept.
func (b *Buffer) Notify(fn func(Entry)) {
	b.mu.Lock()
	b.onPush = fn
	b.mu.Unlock()
}

// Push appends an entry, evicting the oldest when full.
func (b *Buffer) Push(message string, stack []string) Entry {
	e := Entry{
		ID:      uuid.New(),
		Message: message,
		Stack:   stack,
		At:      time.Now(),
	}

	b.mu.Lock()
	if len(b.entries) >= MaxEntries {
		b.entries = b.entries[1:]
	}
	b.entries = append(b.entries, e)
	fn := b.onPush
	b.mu.Unlock()

	if fn != nil {
		fn(e)
	}
	return e
}

// Entries returns a copy of the buffer, oldest first.
func (b *Buffer) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of buffered entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Capture runs fn, converting a panic into a buffered entry instead of
// crashing the process. The recovered value is reported as an error.
func (b *Buffer) Capture(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.Push(fmt.Sprint(r), Callers(3))
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return fn()
}

// Callers captures the current call stack as short frames, absolute path
// prefixes stripped down to package/file.go:line.
func Callers(skip int) []string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var stack []string
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			stack = append(stack, fmt.Sprintf("%s (%s:%d)",
				frame.Function, shortPath(frame.File), frame.Line))
		}
		if !more {
			break
		}
	}
	return stack
}

// shortPath keeps at most the last two path elements.
func shortPath(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) <= 2 {
		return path
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
