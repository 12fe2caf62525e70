package listing

import (
	"strconv"
	"sync"
)

// Registry interns opaque resource refs into short counter-based ids.
// Mappings live for the process lifetime and are never evicted, so ids
// embedded in old menus keep resolving until restart.
type Registry struct {
	mu    sync.RWMutex
	byRef map[ResourceRef]ShortID
	byID  map[ShortID]ResourceRef
	next  uint64
}

// NewRegistry returns an empty ref registry.
func NewRegistry() *Registry {
	return &Registry{
		byRef: make(map[ResourceRef]ShortID),
		byID:  make(map[ShortID]ResourceRef),
	}
}

// Intern returns the short id for ref, minting one on first sight.
// Interning is idempotent: the same ref always yields the same id within
// one process lifetime.
func (r *Registry) Intern(ref ResourceRef) ShortID {
	r.mu.RLock()
	id, ok := r.byRef[ref]
	r.mu.RUnlock()
	if ok {
		return id
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.byRef[ref]; ok {
		return id
	}
	r.next++
	id = ShortID(strconv.FormatUint(r.next, 10))
	r.byRef[ref] = id
	r.byID[id] = ref
	return id
}

// Resolve maps a short id back to its ref. The bool is false when the id
// was never minted in this process lifetime.
func (r *Registry) Resolve(id ShortID) (ResourceRef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ref, ok := r.byID[id]
	return ref, ok
}

// Len reports how many refs are currently interned.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
