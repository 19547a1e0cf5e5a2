// internal/entity/arena.go
package entity

import "go-stg-engine/internal/types"

type slot struct {
	generation uint32
	obj        *Object
}

// Arena owns every live object. Handles stay valid until the object is
// reaped; afterwards they resolve to nil even if the slot is reused.
// Iteration follows insertion order.
type Arena struct {
	slots []slot
	free  []uint32
	order []types.Handle
}

func NewArena() *Arena {
	return &Arena{}
}

// Insert stores o and returns its handle.
func (a *Arena) Insert(o *Object) types.Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}
	s := &a.slots[idx]
	s.generation++
	s.obj = o
	o.Handle = types.Handle{Index: idx, Generation: s.generation}
	a.order = append(a.order, o.Handle)
	return o.Handle
}

// Get resolves a handle; stale or zero handles return nil.
func (a *Arena) Get(h types.Handle) *Object {
	if h.IsZero() || int(h.Index) >= len(a.slots) {
		return nil
	}
	s := a.slots[h.Index]
	if s.generation != h.Generation {
		return nil
	}
	return s.obj
}

// Len returns the number of stored objects, tombstoned ones included.
func (a *Arena) Len() int {
	return len(a.order)
}

// Objects returns a snapshot of all stored objects in insertion order.
// Objects inserted afterwards are not part of the snapshot.
func (a *Arena) Objects() []*Object {
	out := make([]*Object, 0, len(a.order))
	for _, h := range a.order {
		if o := a.Get(h); o != nil {
			out = append(out, o)
		}
	}
	return out
}

// Roots returns the stored objects without a parent, in insertion order.
func (a *Arena) Roots() []*Object {
	out := make([]*Object, 0, len(a.order))
	for _, h := range a.order {
		if o := a.Get(h); o != nil && a.Get(o.Parent) == nil {
			out = append(out, o)
		}
	}
	return out
}

// AddChild attaches child under parent. It refuses cycles and stale handles.
func (a *Arena) AddChild(parent, child types.Handle) bool {
	p, c := a.Get(parent), a.Get(child)
	if p == nil || c == nil || parent == child {
		return false
	}
	for anc := p; anc != nil; anc = a.Get(anc.Parent) {
		if anc.Handle == child {
			return false
		}
	}
	if old := a.Get(c.Parent); old != nil {
		old.Children = removeHandle(old.Children, child)
	}
	c.Parent = parent
	p.Children = append(p.Children, child)
	return true
}

// Reap removes tombstoned objects. Children of a removed object are
// deactivated and removed with it. Returns the removed objects.
func (a *Arena) Reap() []*Object {
	for _, h := range a.order {
		if o := a.Get(h); o != nil && !o.Active {
			a.cascade(o)
		}
	}

	var removed []*Object
	kept := a.order[:0]
	for _, h := range a.order {
		o := a.Get(h)
		if o == nil {
			continue
		}
		if o.Active {
			kept = append(kept, h)
			continue
		}
		removed = append(removed, o)
	}
	a.order = kept

	for _, o := range removed {
		if p := a.Get(o.Parent); p != nil && p.Active {
			p.Children = removeHandle(p.Children, o.Handle)
		}
		s := &a.slots[o.Handle.Index]
		s.obj = nil
		s.generation++
		a.free = append(a.free, o.Handle.Index)
	}
	return removed
}

// Reset drops every object and invalidates all handles.
func (a *Arena) Reset() {
	for i := range a.slots {
		if a.slots[i].obj != nil {
			a.slots[i].obj = nil
			a.slots[i].generation++
			a.free = append(a.free, uint32(i))
		}
	}
	a.order = a.order[:0]
}

func (a *Arena) cascade(o *Object) {
	for _, ch := range o.Children {
		if c := a.Get(ch); c != nil {
			c.Active = false
			a.cascade(c)
		}
	}
}

func removeHandle(hs []types.Handle, h types.Handle) []types.Handle {
	for i, x := range hs {
		if x == h {
			return append(hs[:i], hs[i+1:]...)
		}
	}
	return hs
}
