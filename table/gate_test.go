package table

import (
	"testing"
	"time"
)

func TestGateCapacity(t *testing.T) {
	g := NewGate(2)
	if !g.TryAcquire() || !g.TryAcquire() {
		t.Fatal("Expecting two seats to be free")
	}
	if g.TryAcquire() {
		t.Error("Expecting gate to be full at capacity")
	}
	if g.Held() != 2 || g.Available() != 0 {
		t.Errorf("Expecting 2 held, 0 available but got %d, %d", g.Held(), g.Available())
	}
	g.Release()
	g.Release()
	if g.Held() != 0 || g.Available() != g.Capacity() {
		t.Errorf("Expecting gate drained but got %d held", g.Held())
	}
}

func TestGateReleaseWakesWaiter(t *testing.T) {
	g := NewGate(1)
	g.Acquire()
	acquired := make(chan struct{})
	go func() {
		g.Acquire()
		close(acquired)
	}()
	select {
	case <-acquired:
		t.Fatal("Expecting Acquire to block on a full gate")
	case <-time.After(20 * time.Millisecond):
	}
	g.Release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("Expecting Release to wake the blocked Acquire")
	}
	if g.Held() != 1 {
		t.Errorf("Expecting 1 seat held but got %d", g.Held())
	}
	g.Release()
}

func TestGateOverRelease(t *testing.T) {
	g := NewGate(1)
	defer func() {
		if recover() == nil {
			t.Error("Expecting release of an untaken seat to panic")
		}
		if g.Held() != 0 {
			t.Errorf("Expecting held count unchanged but got %d", g.Held())
		}
	}()
	g.Release()
}
