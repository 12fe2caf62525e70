package listing

import (
	"sync"
	"testing"
)

func TestTrackerDefaultsToZero(t *testing.T) {
	tr := NewPageTracker()
	if got := tr.Get(100); got != 0 {
		t.Fatalf("unseen user page = %d, want 0", got)
	}
}

func TestTrackerSetAndAdvance(t *testing.T) {
	tr := NewPageTracker()
	tr.Set(7, 3)
	if got := tr.Get(7); got != 3 {
		t.Fatalf("page = %d, want 3", got)
	}
	if got := tr.Advance(7, 1); got != 4 {
		t.Fatalf("advance = %d, want 4", got)
	}
	if got := tr.Advance(7, -10); got != 0 {
		t.Fatalf("advance clamps at 0, got %d", got)
	}
	if got := tr.Get(7); got != 0 {
		t.Fatalf("stored page = %d, want 0", got)
	}
}

func TestTrackerIsolatesUsers(t *testing.T) {
	tr := NewPageTracker()
	tr.Set(1, 5)
	tr.Set(2, 9)
	if tr.Get(1) != 5 || tr.Get(2) != 9 {
		t.Fatalf("pages mixed: %d, %d", tr.Get(1), tr.Get(2))
	}
}

func TestTrackerConcurrent(t *testing.T) {
	tr := NewPageTracker()
	var wg sync.WaitGroup
	for u := int64(0); u < 8; u++ {
		wg.Add(1)
		go func(u int64) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				tr.Advance(u, 1)
			}
		}(u)
	}
	wg.Wait()
	for u := int64(0); u < 8; u++ {
		if got := tr.Get(u); got != 100 {
			t.Fatalf("user %d page = %d, want 100", u, got)
		}
	}
}
