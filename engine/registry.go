package engine

// slot is one arena cell; heap-allocated so *Entity stays valid across growth
type slot struct {
	entity Entity
	live   bool
}

// Registry owns every entity and hands out stable integer handles
// Removal is mark-and-sweep: Remove tombstones a slot, the next ForEachLive
// pass drops it from the iteration order and recycles the handle
type Registry struct {
	slots []*slot
	free  []EntityID
	order []EntityID // Iteration order; may hold tombstones until swept
	live  int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		slots: make([]*slot, 0, 256),
		order: make([]EntityID, 0, 256),
	}
}

// Insert takes ownership of e and returns its handle
func (r *Registry) Insert(e Entity) EntityID {
	var id EntityID
	if n := len(r.free); n > 0 {
		id = r.free[n-1]
		r.free = r.free[:n-1]
		s := r.slots[id-1]
		s.entity = e
		s.live = true
	} else {
		r.slots = append(r.slots, &slot{entity: e, live: true})
		id = EntityID(len(r.slots))
	}
	r.order = append(r.order, id)
	r.live++
	return id
}

// Remove releases ownership; safe against double removal and unknown handles
func (r *Registry) Remove(id EntityID) {
	s := r.slotOf(id)
	if s == nil || !s.live {
		return
	}
	s.live = false
	s.entity = Entity{}
	r.live--
}

// Get returns the live entity for id, or nil
func (r *Registry) Get(id EntityID) *Entity {
	s := r.slotOf(id)
	if s == nil || !s.live {
		return nil
	}
	return &s.entity
}

// Alive reports whether id refers to a live entity
func (r *Registry) Alive(id EntityID) bool {
	return r.Get(id) != nil
}

// Live returns the number of live entities
func (r *Registry) Live() int {
	return r.live
}

// ForEachLive visits live entities in insertion order, compacting tombstones as it goes
// fn may retire any entity, including ones not yet visited; retired entities are skipped
// Entities inserted by fn are kept but not visited in the same pass
// Returning false from fn stops the pass early
func (r *Registry) ForEachLive(fn func(id EntityID, e *Entity) bool) {
	n := len(r.order)
	w := 0
	i := 0
	for i < n {
		id := r.order[i]
		i++
		s := r.slots[id-1]
		if !s.live {
			r.free = append(r.free, id)
			continue
		}
		r.order[w] = id
		w++
		if !fn(id, &s.entity) {
			break
		}
	}
	// Unvisited tail plus anything inserted during the pass
	r.order = append(r.order[:w], r.order[i:]...)
}

// IDs returns a snapshot of live handles in iteration order
func (r *Registry) IDs() []EntityID {
	ids := make([]EntityID, 0, r.live)
	for _, id := range r.order {
		if r.slots[id-1].live {
			ids = append(ids, id)
		}
	}
	return ids
}

// Clear drops every entity and resets handle allocation
func (r *Registry) Clear() {
	r.slots = r.slots[:0]
	r.free = r.free[:0]
	r.order = r.order[:0]
	r.live = 0
}

func (r *Registry) slotOf(id EntityID) *slot {
	if id == NoEntity || int(id) > len(r.slots) {
		return nil
	}
	return r.slots[id-1]
}
