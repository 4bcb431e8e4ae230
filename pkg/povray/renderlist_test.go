package povray

import (
	"testing"

	"github.com/KonboiOne/simulator-chrono-project/pkg/scene"
)

func TestRenderList_AddIsUnique(t *testing.T) {
	l := newRenderList()
	b := sphereBody("ball")
	l.add(b)
	l.add(b)
	if l.size() != 1 {
		t.Errorf("expected 1 item, got %d", l.size())
	}
}

func TestRenderList_SkipsModelless(t *testing.T) {
	l := newRenderList()
	l.add(scene.NewBody("ghost"))
	l.add(nil)
	if l.size() != 0 {
		t.Errorf("expected empty list, got %d items", l.size())
	}
}

func TestRenderList_RemovePreservesOrder(t *testing.T) {
	l := newRenderList()
	a := sphereBody("a")
	b := sphereBody("b")
	c := sphereBody("c")
	l.add(a)
	l.add(b)
	l.add(c)

	l.remove(b)
	got := l.members()
	if len(got) != 2 {
		t.Fatalf("expected 2 members, got %d", len(got))
	}
	if got[0].Name() != "a" || got[1].Name() != "c" {
		t.Errorf("unexpected order: %s, %s", got[0].Name(), got[1].Name())
	}

	l.remove(b) // already gone
	if l.size() != 2 {
		t.Error("removing an absent item changed the list")
	}

	l.removeAll()
	if l.size() != 0 {
		t.Error("removeAll left items")
	}
}
