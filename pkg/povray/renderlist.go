package povray

import "github.com/KonboiOne/simulator-chrono-project/pkg/scene"

// renderList is the set of items currently subject to export, keyed by
// item identity. Membership is unique; insertion order is preserved so
// serialized output is stable across exports.
type renderList struct {
	present map[uint64]bool
	items   []scene.Item
}

func newRenderList() *renderList {
	return &renderList{present: make(map[uint64]bool)}
}

// add inserts an item. Items already present or without a visual model
// are silently skipped.
func (l *renderList) add(item scene.Item) {
	if item == nil || item.Model() == nil || l.present[item.ID()] {
		return
	}
	l.present[item.ID()] = true
	l.items = append(l.items, item)
}

// remove deletes an item if present.
func (l *renderList) remove(item scene.Item) {
	if item == nil || !l.present[item.ID()] {
		return
	}
	delete(l.present, item.ID())
	for i, it := range l.items {
		if it.ID() == item.ID() {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// removeAll clears the list.
func (l *renderList) removeAll() {
	l.present = make(map[uint64]bool)
	l.items = nil
}

// members returns the listed items in insertion order.
func (l *renderList) members() []scene.Item {
	return l.items
}

func (l *renderList) size() int {
	return len(l.items)
}
