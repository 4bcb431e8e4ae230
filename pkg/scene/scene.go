// Package scene provides the simulation object graph consumed by
// visualization backends: shapes, materials, visual models, items
// (bodies and links), the system container, and contact reports.
package scene

import (
	"sync/atomic"

	"github.com/KonboiOne/simulator-chrono-project/pkg/geom"
)

// objectIDs hands out session-unique identities for shapes, materials
// and items. IDs start at 1 so the zero value never collides.
var objectIDs atomic.Uint64

func newObjectID() uint64 {
	return objectIDs.Add(1)
}

// Contact is a single point of a contact report: application point and
// reaction force, both in world coordinates.
type Contact struct {
	Point geom.Vec3
	Force geom.Vec3
}

// System is the container of simulation items and the latest contact
// report. Items keep insertion order.
type System struct {
	items    []Item
	contacts []Contact
}

// NewSystem creates an empty system.
func NewSystem() *System {
	return &System{}
}

// Add appends an item to the system. Adding an item twice is a no-op.
func (s *System) Add(item Item) {
	for _, it := range s.items {
		if it.ID() == item.ID() {
			return
		}
	}
	s.items = append(s.items, item)
}

// Remove detaches an item from the system. Removing an absent item is
// a no-op.
func (s *System) Remove(item Item) {
	for i, it := range s.items {
		if it.ID() == item.ID() {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Items returns the contained items in insertion order. The returned
// slice is the system's own storage and must not be modified.
func (s *System) Items() []Item {
	return s.items
}

// NumItems returns the number of contained items.
func (s *System) NumItems() int {
	return len(s.items)
}

// Find returns the first item with the given name, or nil.
func (s *System) Find(name string) Item {
	for _, it := range s.items {
		if it.Name() == name {
			return it
		}
	}
	return nil
}

// SetContacts replaces the current contact report. A simulation calls
// this once per step with the contacts of that step.
func (s *System) SetContacts(contacts []Contact) {
	s.contacts = contacts
}

// NumContacts returns the size of the current contact report.
func (s *System) NumContacts() int {
	return len(s.contacts)
}

// EachContact invokes fn for every contact of the current report, in
// report order.
func (s *System) EachContact(fn func(Contact)) {
	for _, c := range s.contacts {
		fn(c)
	}
}
