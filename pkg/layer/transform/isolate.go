package transform

import (
	"github.com/layerforge/layerforge/pkg/errors"
	"github.com/layerforge/layerforge/pkg/layer"
)

// Isolate extracts the sub-tree rooted at the first node matching selector
// and returns it as an independent component tree.
//
// A node matches when its ElementID or its "id" attribute equals selector.
// The search is depth-first pre-order and the first match wins; duplicate
// ids are not disambiguated. The returned tree is a deep copy that owns all
// of its nodes, so mutating it cannot affect the source tree.
//
// A miss is an expected, recoverable condition: Isolate returns an error
// with code [errors.ErrCodeElementNotFound] rather than panicking. Runs in
// O(n) over the tree size.
func Isolate(root *layer.Node, selector string) (*layer.Node, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidTree, "layer tree is nil")
	}
	if selector == "" {
		return nil, errors.New(errors.ErrCodeInvalidSelector, "selector must not be empty")
	}

	match := root.Find(selector)
	if match == nil {
		return nil, errors.New(errors.ErrCodeElementNotFound, "no element matches selector %q", selector)
	}
	return match.Clone(), nil
}
