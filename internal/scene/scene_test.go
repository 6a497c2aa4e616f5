package scene

import (
	"testing"

	"github.com/Faultbox/hexmap/internal/mesh"
	"github.com/Faultbox/hexmap/pkg/math"
)

func TestAttachDetach(t *testing.T) {
	root := NewRoot("map")
	a := &Entity{Name: "a", Mesh: mesh.HexCap(1, 0)}
	b := &Entity{Name: "b", Mesh: mesh.HexCap(1, 0), Shared: true}

	root.Attach(a)
	root.Attach(b)
	root.Attach(a) // no duplicate

	if root.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", root.Len())
	}
	if a.Parent() != root {
		t.Error("a.Parent() should be root")
	}

	if !root.Detach(a) {
		t.Error("Detach(a) = false, want true")
	}
	if root.Detach(a) {
		t.Error("second Detach(a) = true, want false")
	}
	if a.Mesh != nil {
		t.Error("detached entity should release its owned mesh")
	}
	if root.Len() != 1 || root.Children()[0] != b {
		t.Errorf("children after detach = %v", root.Children())
	}
}

func TestAttachMovesBetweenRoots(t *testing.T) {
	r1 := NewRoot("one")
	r2 := NewRoot("two")
	e := &Entity{Name: "e", Shared: true}

	r1.Attach(e)
	r2.Attach(e)

	if r1.Len() != 0 || r2.Len() != 1 || e.Parent() != r2 {
		t.Errorf("entity not moved: r1=%d r2=%d", r1.Len(), r2.Len())
	}
}

func TestClearKeepsSharedMeshes(t *testing.T) {
	root := NewRoot("map")
	shared := mesh.HexCap(1, 0)
	owned := &Entity{Name: "owned", Mesh: mesh.HexCap(1, 0)}
	inst := &Entity{Name: "inst", Mesh: shared, Shared: true}
	root.Attach(owned)
	root.Attach(inst)

	root.Clear()

	if root.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", root.Len())
	}
	if owned.Mesh != nil {
		t.Error("owned mesh should be released")
	}
	if inst.Mesh != shared {
		t.Error("shared mesh must survive Clear")
	}
	if inst.Parent() != nil {
		t.Error("cleared entity still has a parent")
	}
}

func TestDetachAllPreservesOrder(t *testing.T) {
	root := NewRoot("map")
	var es []*Entity
	for i := 0; i < 5; i++ {
		e := &Entity{Name: string(rune('a' + i)), Shared: true}
		es = append(es, e)
		root.Attach(e)
	}

	root.DetachAll([]*Entity{es[1], es[3]})

	got := ""
	for _, c := range root.Children() {
		got += c.Name
	}
	if got != "ace" {
		t.Errorf("remaining children = %q, want %q", got, "ace")
	}
}

func TestWorldMatrixAppliesRootScale(t *testing.T) {
	root := NewRoot("map")
	root.Scale = 2
	e := &Entity{Position: math.Vec3{X: 1, Y: 2, Z: 3}}
	root.Attach(e)

	got := e.WorldMatrix().TransformPoint([3]float32{0.5, 0, 0})
	want := [3]float32{3, 4, 6}
	if got != want {
		t.Errorf("world point = %v, want %v", got, want)
	}

	objs := root.Objects()
	if len(objs) != 1 || objs[0].Transform != e.WorldMatrix() {
		t.Errorf("Objects() = %+v", objs)
	}
}
