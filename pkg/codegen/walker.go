package codegen

import (
	"bytes"
	"slices"
	"strings"

	"github.com/layerforge/layerforge/pkg/layer"
)

// indentUnit is one indentation level of emitted code.
const indentUnit = "  "

// pad returns the indentation prefix for a depth.
func pad(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

// renderFunc emits the line group for a single node at a depth. The open
// callback runs before the node's children, the close callback after.
type renderFunc func(buf *bytes.Buffer, n *layer.Node, depth int)

// walkTree drives the indent-tracked recursive descent shared by every
// emitter: open the node, render children one level deeper, close the node.
// close may be nil for emitters that produce no closing line group.
func walkTree(buf *bytes.Buffer, n *layer.Node, depth int, open, close renderFunc) {
	open(buf, n, depth)
	for i := range n.Children {
		walkTree(buf, &n.Children[i], depth+1, open, close)
	}
	if close != nil {
		close(buf, n, depth)
	}
}

// sortedKeys returns a map's keys in sorted order for deterministic output.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// inlineStyle flattens style declarations into "key: value; key: value".
func inlineStyle(styles map[string]string) string {
	parts := make([]string, 0, len(styles))
	for _, k := range sortedKeys(styles) {
		parts = append(parts, k+": "+styles[k])
	}
	return strings.Join(parts, "; ")
}

// isAccessibilityAttr reports whether an attribute is an ARIA or role hint.
// These pass through verbatim when accessibility passthrough is enabled.
func isAccessibilityAttr(key string) bool {
	return key == "role" || strings.HasPrefix(key, "aria-")
}
