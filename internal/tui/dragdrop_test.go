package tui

import (
	"testing"
)

// fakeTarget records the drop-target calls it receives.
type fakeTarget struct {
	accepts   bool
	dropped   []string
	overCount int
	leftCount int
}

func (f *fakeTarget) AcceptsPayload(kind string) bool { return f.accepts }
func (f *fakeTarget) DragOver()                       { f.overCount++ }
func (f *fakeTarget) DragLeave()                      { f.leftCount++ }
func (f *fakeTarget) Drop(id string)                  { f.dropped = append(f.dropped, id) }

func TestDragStateStartAttachesPayload(t *testing.T) {
	t.Parallel()

	var d DragState
	d.Start(ProjectCard{id: "p-1"})

	if !d.Active() {
		t.Fatal("expected active drag after Start")
	}
	if d.Payload() != "p-1" {
		t.Errorf("payload = %q, want p-1", d.Payload())
	}
}

func TestDropOnAcceptingTarget(t *testing.T) {
	t.Parallel()

	var d DragState
	d.Start(ProjectCard{id: "p-1"})

	target := &fakeTarget{accepts: true}
	d.DropOn(target)

	if len(target.dropped) != 1 || target.dropped[0] != "p-1" {
		t.Errorf("target received %v, want [p-1]", target.dropped)
	}
	if d.Active() {
		t.Error("drag should end after drop")
	}
}

// TestDropOnRejectingTarget checks that a target declining the payload kind
// never receives the drop, and the drag still ends.
func TestDropOnRejectingTarget(t *testing.T) {
	t.Parallel()

	var d DragState
	d.Start(ProjectCard{id: "p-1"})

	target := &fakeTarget{accepts: false}
	d.DropOn(target)

	if len(target.dropped) != 0 {
		t.Errorf("rejecting target received %v, want none", target.dropped)
	}
	if d.Active() {
		t.Error("drag should end even when the target rejects")
	}
}

func TestCancelClearsPayload(t *testing.T) {
	t.Parallel()

	var d DragState
	d.Start(ProjectCard{id: "p-1"})
	d.Cancel()

	if d.Active() || d.Payload() != "" {
		t.Errorf("cancel left state active=%v payload=%q", d.Active(), d.Payload())
	}
}

func TestDropWithoutStartIsNoOp(t *testing.T) {
	t.Parallel()

	var d DragState
	target := &fakeTarget{accepts: true}
	d.DropOn(target)

	if len(target.dropped) != 0 {
		t.Errorf("idle drop delivered %v, want none", target.dropped)
	}
}
