package transform

import (
	"github.com/layerforge/layerforge/pkg/layer"
)

// Normalize rebases a component tree's coordinate space so the root sits at
// the origin. The returned tree is a new copy; the input is not mutated.
//
// Rebasing is parent-relative at every level: each node's new position is
// its original absolute position minus its immediate parent's
// pre-normalization origin, and the same rule is applied recursively one
// level down. The root itself becomes (0, 0) with its size unchanged.
//
// The result is a chain of nested local offsets. Summing a node's ancestor
// offsets yields its original position relative to the isolated root, so
// adding back the root's original origin reconstructs the absolute page
// position. This additive composition is relied on downstream and must not
// be collapsed into a single root-relative pass.
func Normalize(root *layer.Node) *layer.Node {
	if root == nil {
		return nil
	}

	out := root.Clone()
	originX, originY := out.Bounds.X, out.Bounds.Y
	out.Bounds.X, out.Bounds.Y = 0, 0
	for i := range out.Children {
		rebase(&out.Children[i], originX, originY)
	}
	return out
}

// rebase shifts n against its parent's pre-normalization origin, then
// recurses with n's own pre-normalization origin.
func rebase(n *layer.Node, parentX, parentY float64) {
	originX, originY := n.Bounds.X, n.Bounds.Y
	n.Bounds.X = originX - parentX
	n.Bounds.Y = originY - parentY
	for i := range n.Children {
		rebase(&n.Children[i], originX, originY)
	}
}
