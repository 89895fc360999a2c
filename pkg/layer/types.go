package layer

import (
	"maps"
	"time"
)

// Paint status values for a captured element.
const (
	StatusPainted   = "painted"
	StatusUnpainted = "unpainted"
)

// Bounds is an element's box in absolute page coordinates. After
// normalization the coordinates are relative to the element's parent.
type Bounds struct {
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Node is one element of a captured layer tree. Children appear in
// document order; the slice owns its elements, so a Node value is a
// complete subtree.
type Node struct {
	ElementID   string            `json:"element_id" bson:"element_id"`
	TagName     string            `json:"tag_name" bson:"tag_name"`
	Bounds      Bounds            `json:"bounds" bson:"bounds"`
	Styles      map[string]string `json:"styles,omitempty" bson:"styles,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty" bson:"attributes,omitempty"`
	Children    []Node            `json:"children,omitempty" bson:"children,omitempty"`
	PaintStatus string            `json:"paint_status,omitempty" bson:"paint_status,omitempty"`
	PaintedAt   *time.Time        `json:"painted_at,omitempty" bson:"painted_at,omitempty"`
}

// Attr returns the named attribute or "" when absent.
func (n *Node) Attr(name string) string {
	return n.Attributes[name]
}

// Style returns the named computed style or "" when absent.
func (n *Node) Style(name string) string {
	return n.Styles[name]
}

// IsPainted reports whether the element has been painted.
func (n *Node) IsPainted() bool {
	return n.PaintStatus == StatusPainted
}

// Clone returns a deep copy of the subtree. Mutating the copy never
// affects the source.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := *n
	out.Styles = maps.Clone(n.Styles)
	out.Attributes = maps.Clone(n.Attributes)
	if n.PaintedAt != nil {
		at := *n.PaintedAt
		out.PaintedAt = &at
	}
	if n.Children != nil {
		out.Children = make([]Node, len(n.Children))
		for i := range n.Children {
			out.Children[i] = *n.Children[i].Clone()
		}
	}
	return &out
}

// Walk visits the subtree in pre-order (parent before children, children
// in document order). The visit function returns false to stop the walk.
func (n *Node) Walk(visit func(*Node) bool) {
	n.walk(visit)
}

func (n *Node) walk(visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].walk(visit) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the subtree.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Find returns the first node in pre-order whose ElementID or "id"
// attribute equals selector, or nil when no node matches.
func (n *Node) Find(selector string) *Node {
	var match *Node
	n.Walk(func(node *Node) bool {
		if node.ElementID == selector || node.Attr("id") == selector {
			match = node
			return false
		}
		return true
	})
	return match
}
