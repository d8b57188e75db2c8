package subs

import (
	"testing"

	"elitewatch/sparkos/kernel"
)

func TestTableAddReplaceRemove(t *testing.T) {
	k := kernel.New()
	a := k.NewEndpoint(kernel.RightSend)
	b := k.NewEndpoint(kernel.RightSend)

	var tbl Table
	if tbl.Add(kernel.Capability{}, 1) {
		t.Fatal("invalid capability accepted")
	}
	tbl.Add(a, 1)
	tbl.Add(b, 2)
	tbl.Add(a, 3)
	if got := tbl.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	var hits int
	tbl.Each(2, func(kernel.Capability) { hits++ })
	if hits != 2 {
		t.Fatalf("mask 2 matched %d, want 2", hits)
	}

	if !tbl.Remove(a) || tbl.Remove(a) {
		t.Fatal("Remove should succeed exactly once")
	}
	hits = 0
	tbl.Each(1, func(kernel.Capability) { hits++ })
	if hits != 0 {
		t.Fatalf("removed subscriber still matched")
	}
}

func TestTableFull(t *testing.T) {
	k := kernel.New()
	var tbl Table
	for i := 0; i < Max; i++ {
		if !tbl.Add(k.NewEndpoint(kernel.RightSend), 1) {
			t.Fatalf("Add %d failed", i)
		}
	}
	if tbl.Add(k.NewEndpoint(kernel.RightSend), 1) {
		t.Fatal("Add succeeded on a full table")
	}
}

func TestFlushKeepsUndelivered(t *testing.T) {
	k := kernel.New()
	a := k.NewEndpoint(kernel.RightSend)
	b := k.NewEndpoint(kernel.RightSend)

	var tbl Table
	tbl.Add(a, 1)
	tbl.Add(b, 2)
	tbl.Mark(1)

	var sent []kernel.Capability
	tbl.Flush(func(c kernel.Capability) bool {
		sent = append(sent, c)
		return false
	})
	if len(sent) != 1 || !sent[0].SameEndpoint(a) {
		t.Fatalf("first flush delivered to %v, want only a", sent)
	}

	tbl.MarkOne(b)
	sent = nil
	tbl.Flush(func(c kernel.Capability) bool {
		sent = append(sent, c)
		return true
	})
	if len(sent) != 2 {
		t.Fatalf("second flush delivered %d, want a retried and b", len(sent))
	}

	sent = nil
	tbl.Flush(func(c kernel.Capability) bool {
		sent = append(sent, c)
		return true
	})
	if len(sent) != 0 {
		t.Fatalf("delivered flags not cleared: %d sends", len(sent))
	}
}
