package listing

import (
	"fmt"
	"sync"
	"testing"
)

func TestInternIdempotent(t *testing.T) {
	reg := NewRegistry()
	ref := ResourceRef("https://example.org/match/arsenal-vs-spurs")

	first := reg.Intern(ref)
	second := reg.Intern(ref)
	if first != second {
		t.Fatalf("intern not idempotent: %s vs %s", first, second)
	}

	got, ok := reg.Resolve(first)
	if !ok {
		t.Fatalf("resolve(%s) missed", first)
	}
	if got != ref {
		t.Fatalf("resolve(%s) = %s, want %s", first, got, ref)
	}
}

func TestInternMintsDistinctIDs(t *testing.T) {
	reg := NewRegistry()
	a := reg.Intern("ref-a")
	b := reg.Intern("ref-b")
	if a == b {
		t.Fatalf("distinct refs share id %s", a)
	}
	if reg.Len() != 2 {
		t.Fatalf("len = %d, want 2", reg.Len())
	}
}

func TestResolveUnknownID(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Resolve("42"); ok {
		t.Fatal("resolve of never-minted id succeeded")
	}
}

func TestInternConcurrent(t *testing.T) {
	reg := NewRegistry()
	const workers = 16
	const refs = 50

	var wg sync.WaitGroup
	ids := make([][]ShortID, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ids[w] = make([]ShortID, refs)
			for i := 0; i < refs; i++ {
				ids[w][i] = reg.Intern(ResourceRef(fmt.Sprintf("ref-%d", i)))
			}
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		for i := 0; i < refs; i++ {
			if ids[w][i] != ids[0][i] {
				t.Fatalf("worker %d got %s for ref-%d, worker 0 got %s", w, ids[w][i], i, ids[0][i])
			}
		}
	}
	if reg.Len() != refs {
		t.Fatalf("len = %d, want %d", reg.Len(), refs)
	}
}
