// Package subs keeps the fixed-size subscriber tables used by notification services.
package subs

import "elitewatch/sparkos/kernel"

// Max is the number of subscribers a table can hold.
const Max = 8

type entry struct {
	inUse bool
	cap   kernel.Capability
	mask  uint8

	// pending is set while the subscriber is owed the current value.
	pending bool
}

// Table maps reply capabilities to interest masks. It is owned by one task.
type Table struct {
	entries [Max]entry
}

// Add registers c with mask, replacing an existing entry for the same endpoint.
// It reports false when c is invalid or the table is full.
func (t *Table) Add(c kernel.Capability, mask uint8) bool {
	if !c.Valid() {
		return false
	}
	free := -1
	for i := range t.entries {
		e := &t.entries[i]
		if e.inUse && e.cap.SameEndpoint(c) {
			e.cap = c
			e.mask = mask
			return true
		}
		if !e.inUse && free < 0 {
			free = i
		}
	}
	if free < 0 {
		return false
	}
	t.entries[free] = entry{inUse: true, cap: c, mask: mask}
	return true
}

// Remove drops the entry for c's endpoint.
func (t *Table) Remove(c kernel.Capability) bool {
	for i := range t.entries {
		if t.entries[i].inUse && t.entries[i].cap.SameEndpoint(c) {
			t.entries[i] = entry{}
			return true
		}
	}
	return false
}

// Len returns the number of live subscribers.
func (t *Table) Len() int {
	n := 0
	for i := range t.entries {
		if t.entries[i].inUse {
			n++
		}
	}
	return n
}

// Each calls fn for every subscriber whose mask intersects mask.
func (t *Table) Each(mask uint8, fn func(c kernel.Capability)) {
	for i := range t.entries {
		e := t.entries[i]
		if e.inUse && e.mask&mask != 0 {
			fn(e.cap)
		}
	}
}

// Mark flags every subscriber whose mask intersects mask as owed a
// notification.
func (t *Table) Mark(mask uint8) {
	for i := range t.entries {
		if t.entries[i].inUse && t.entries[i].mask&mask != 0 {
			t.entries[i].pending = true
		}
	}
}

// MarkOne flags c's entry as owed a notification.
func (t *Table) MarkOne(c kernel.Capability) {
	for i := range t.entries {
		if t.entries[i].inUse && t.entries[i].cap.SameEndpoint(c) {
			t.entries[i].pending = true
		}
	}
}

// Flush calls deliver for each flagged subscriber. A flag stays set when
// deliver returns false, so the next Flush tries again.
func (t *Table) Flush(deliver func(c kernel.Capability) bool) {
	for i := range t.entries {
		e := &t.entries[i]
		if e.inUse && e.pending && deliver(e.cap) {
			e.pending = false
		}
	}
}
