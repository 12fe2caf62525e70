package stats

import (
	"context"
	"testing"
	"time"
)

// The store must be a no-op when the database is disabled.
func TestNilStoreIsSafe(t *testing.T) {
	s := New(nil)
	if s != nil {
		t.Fatal("New(nil) should return a nil store")
	}

	s.Record(context.Background(), 42, "sportshub", ActionCommand)

	sum, err := s.UsageSince(context.Background(), time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("UsageSince on nil store: %v", err)
	}
	if sum.Total != 0 || len(sum.BySources) != 0 {
		t.Fatalf("summary = %+v, want empty", sum)
	}
}
