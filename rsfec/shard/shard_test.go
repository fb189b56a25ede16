package shard

import (
	"bytes"
	"testing"
)

func TestProtectRecover(t *testing.T) {
	p, err := New(8, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	payload := make([]byte, 10*1024+37)
	for i := range payload {
		payload[i] = byte(i % 251)
	}

	shards, err := p.Protect(payload)
	if err != nil {
		t.Fatalf("Protect: %v", err)
	}
	if len(shards) != 11 {
		t.Fatalf("shard count %d, want 11", len(shards))
	}

	ok, err := p.Verify(shards)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatalf("fresh shards should verify")
	}

	// Lose the maximum number of shards.
	shards[0] = nil
	shards[4] = nil
	shards[10] = nil

	got, err := p.Recover(shards, len(payload))
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("recovered payload differs from original")
	}
}

func TestRecoverTooManyLost(t *testing.T) {
	p, err := New(6, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	shards, err := p.Protect(bytes.Repeat([]byte("payload"), 100))
	if err != nil {
		t.Fatalf("Protect: %v", err)
	}

	shards[0] = nil
	shards[1] = nil
	shards[2] = nil

	if _, err := p.Recover(shards, 700); err != ErrTooManyLost {
		t.Fatalf("want ErrTooManyLost, got %v", err)
	}
}

func TestInvalidLayout(t *testing.T) {
	if _, err := New(0, 4); err != ErrInvalidLayout {
		t.Fatalf("want ErrInvalidLayout, got %v", err)
	}
	if _, err := New(4, 0); err != ErrInvalidLayout {
		t.Fatalf("want ErrInvalidLayout, got %v", err)
	}
}

func TestOverhead(t *testing.T) {
	p, _ := New(10, 4)
	if got := p.Overhead(); got != 1.4 {
		t.Fatalf("Overhead = %v, want 1.4", got)
	}
}
