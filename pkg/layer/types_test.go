package layer

import (
	"testing"
	"time"
)

// demoTree builds a small page capture used across the package tests.
func demoTree() *Node {
	painted := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	return &Node{
		ElementID: "root",
		TagName:   "div",
		Bounds:    Bounds{X: 10, Y: 10, Width: 100, Height: 50},
		Styles:    map[string]string{"backgroundColor": "#fff"},
		Attributes: map[string]string{
			"id":   "root",
			"role": "main",
		},
		PaintStatus: StatusPainted,
		PaintedAt:   &painted,
		Children: []Node{
			{
				ElementID:   "btn-1",
				TagName:     "button",
				Bounds:      Bounds{X: 20, Y: 20, Width: 30, Height: 10},
				PaintStatus: StatusPainted,
			},
			{
				ElementID:   "img-1",
				TagName:     "img",
				Bounds:      Bounds{X: 60, Y: 20, Width: 20, Height: 20},
				Attributes:  map[string]string{"src": "a.png"},
				PaintStatus: StatusUnpainted,
			},
		},
	}
}

func TestCount(t *testing.T) {
	if got := demoTree().Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
}

func TestWalkPreOrder(t *testing.T) {
	var order []string
	demoTree().Walk(func(n *Node) bool {
		order = append(order, n.ElementID)
		return true
	})

	want := []string{"root", "btn-1", "img-1"}
	if len(order) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("visit[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestWalkStopsEarly(t *testing.T) {
	visits := 0
	demoTree().Walk(func(n *Node) bool {
		visits++
		return false
	})
	if visits != 1 {
		t.Errorf("visits = %d, want 1", visits)
	}
}

func TestFind(t *testing.T) {
	tree := demoTree()

	tests := []struct {
		name     string
		selector string
		wantID   string
	}{
		{"ByElementID", "btn-1", "btn-1"},
		{"ByIDAttribute", "root", "root"},
		{"Root", "root", "root"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tree.Find(tt.selector)
			if got == nil {
				t.Fatalf("Find(%q) = nil", tt.selector)
			}
			if got.ElementID != tt.wantID {
				t.Errorf("Find(%q).ElementID = %q, want %q", tt.selector, got.ElementID, tt.wantID)
			}
		})
	}

	if got := tree.Find("does-not-exist"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}
}

func TestFindFirstMatchWins(t *testing.T) {
	// Two nodes share the id attribute "dup"; pre-order search must return
	// the first encountered.
	tree := &Node{
		ElementID: "root",
		TagName:   "div",
		Children: []Node{
			{ElementID: "a", TagName: "span", Attributes: map[string]string{"id": "dup"}},
			{ElementID: "b", TagName: "span", Attributes: map[string]string{"id": "dup"}},
		},
	}

	got := tree.Find("dup")
	if got == nil || got.ElementID != "a" {
		t.Errorf("Find(dup) = %v, want node a", got)
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := demoTree()
	copy := orig.Clone()

	copy.Styles["backgroundColor"] = "#000"
	copy.Children[0].Bounds.X = 999
	copy.Children[1].Attributes["src"] = "b.png"

	if orig.Styles["backgroundColor"] != "#fff" {
		t.Error("clone mutation leaked into source styles")
	}
	if orig.Children[0].Bounds.X != 20 {
		t.Error("clone mutation leaked into source bounds")
	}
	if orig.Children[1].Attributes["src"] != "a.png" {
		t.Error("clone mutation leaked into source attributes")
	}
	if copy.PaintedAt == orig.PaintedAt {
		t.Error("clone should not share the PaintedAt pointer")
	}
}

func TestTreeStats(t *testing.T) {
	s := TreeStats(demoTree())

	if s.Nodes != 3 {
		t.Errorf("Nodes = %d, want 3", s.Nodes)
	}
	if s.Painted != 2 {
		t.Errorf("Painted = %d, want 2", s.Painted)
	}
	if s.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", s.MaxDepth)
	}
}
