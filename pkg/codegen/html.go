package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/layerforge/layerforge/pkg/layer"
)

// voidTags have no closing tag in static markup.
var voidTags = map[string]bool{
	"img": true, "input": true, "br": true, "hr": true, "meta": true, "link": true,
}

// emitHTML lowers a component tree to raw nested markup. All attributes are
// copied through and styles are flattened into a single inline style string.
func emitHTML(n *layer.Node, opts Options) Artifact {
	name := opts.exportName()
	props := ExtractProps(n)

	var buf bytes.Buffer
	open := func(buf *bytes.Buffer, node *layer.Node, depth int) {
		fmt.Fprintf(buf, "%s<%s%s>\n", pad(depth), node.TagName, htmlAttrs(node, opts))
	}
	closeFn := func(buf *bytes.Buffer, node *layer.Node, depth int) {
		if voidTags[node.TagName] {
			return
		}
		fmt.Fprintf(buf, "%s</%s>\n", pad(depth), node.TagName)
	}
	walkTree(&buf, n, 0, open, closeFn)

	a := Artifact{
		Code:          buf.String(),
		Tests:         testScaffold(name, TargetHTML),
		Documentation: docScaffold(name, n, props),
	}
	if opts.IncludeStyles {
		a.Styles = stylesheet(n, opts)
	}
	return a
}

// htmlAttrs copies every attribute through verbatim (ARIA/role hints gated
// on the accessibility option) and appends the flattened style string.
func htmlAttrs(n *layer.Node, opts Options) string {
	var parts []string
	for _, k := range sortedKeys(n.Attributes) {
		if isAccessibilityAttr(k) && !opts.IncludeAccessibility {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%q", k, n.Attributes[k]))
	}
	if opts.IncludeStyles && len(n.Styles) > 0 {
		parts = append(parts, fmt.Sprintf("style=%q", inlineStyle(n.Styles)))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}
