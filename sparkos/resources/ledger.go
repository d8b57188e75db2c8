package resources

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// ErrDoubleRelease is returned when a handle is released a second time.
var ErrDoubleRelease = errors.New("resource released twice")

// ErrUnknownHandle is returned for a handle the ledger never issued.
var ErrUnknownHandle = errors.New("unknown resource handle")

// Handle identifies one acquisition in a Ledger.
type Handle uint32

type ledgerEntry struct {
	kind     string
	name     string
	released bool
}

// Ledger records resource acquisitions and releases so a lifecycle can be
// checked for leaks and double releases. It is owned by one task.
type Ledger struct {
	next    Handle
	entries map[Handle]*ledgerEntry
}

func NewLedger() *Ledger {
	return &Ledger{entries: make(map[Handle]*ledgerEntry)}
}

// Acquire records a new live resource.
func (l *Ledger) Acquire(kind, name string) Handle {
	l.next++
	l.entries[l.next] = &ledgerEntry{kind: kind, name: name}
	return l.next
}

// Release marks h released. A second release is reported and leaves the
// ledger unchanged; the caller must not free the resource again.
func (l *Ledger) Release(h Handle) error {
	e, ok := l.entries[h]
	if !ok {
		return errors.Wrapf(ErrUnknownHandle, "release %d", h)
	}
	if e.released {
		return errors.Wrapf(ErrDoubleRelease, "release %s %s", e.kind, e.name)
	}
	e.released = true
	return nil
}

// Live reports whether h has been acquired and not yet released.
func (l *Ledger) Live(h Handle) bool {
	e, ok := l.entries[h]
	return ok && !e.released
}

// Counts returns the number of acquisitions and releases recorded.
func (l *Ledger) Counts() (acquired, released int) {
	for _, e := range l.entries {
		acquired++
		if e.released {
			released++
		}
	}
	return acquired, released
}

// Leaks lists the resources that are still live, as "kind name", in
// acquisition order.
func (l *Ledger) Leaks() []string {
	var hs []Handle
	for h, e := range l.entries {
		if !e.released {
			hs = append(hs, h)
		}
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })

	out := make([]string, 0, len(hs))
	for _, h := range hs {
		e := l.entries[h]
		out = append(out, fmt.Sprintf("%s %s", e.kind, e.name))
	}
	return out
}
