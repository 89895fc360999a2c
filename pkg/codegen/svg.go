package codegen

import (
	"bytes"
	"fmt"

	"github.com/layerforge/layerforge/pkg/errors"
	"github.com/layerforge/layerforge/pkg/layer"
)

// defaultFill colors rectangle primitives whose node declares no background.
const defaultFill = "#d9d9d9"

// rectTags are the structural and interactive containers lowered to
// rectangle primitives.
var rectTags = map[string]bool{
	"div": true, "section": true, "button": true,
}

// emitSVG lowers a component tree to vector-graphics primitives by tag
// dispatch: div/section/button descendants become rectangles sized and
// positioned from bounds, img descendants become image primitives
// referencing their source attribute. The isolated root itself defines the
// viewport and contributes no primitive.
//
// Any other tag contributes no primitive but its children are still
// visited. The drop is lossy, so each unmapped tag records one entry in
// [Artifact.Warnings] instead of disappearing silently.
//
// Primitive positions are the sum of each node's ancestor offsets, so
// normalized (parent-relative) trees flatten back to component-local
// coordinates.
func emitSVG(n *layer.Node, opts Options) Artifact {
	name := opts.exportName()
	props := ExtractProps(n)

	var buf bytes.Buffer
	var warnings []string

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		n.Bounds.Width, n.Bounds.Height, n.Bounds.Width, n.Bounds.Height)

	var lower func(node *layer.Node, originX, originY float64)
	lower = func(node *layer.Node, originX, originY float64) {
		x := originX + node.Bounds.X
		y := originY + node.Bounds.Y

		switch {
		case rectTags[node.TagName]:
			fill := node.Style("backgroundColor")
			if fill == "" {
				fill = node.Style("background-color")
			}
			if fill == "" {
				fill = defaultFill
			}
			fmt.Fprintf(&buf, `%s<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				indentUnit, x, y, node.Bounds.Width, node.Bounds.Height, fill)
		case node.TagName == "img":
			fmt.Fprintf(&buf, `%s<image x="%.1f" y="%.1f" width="%.1f" height="%.1f" href="%s"/>`+"\n",
				indentUnit, x, y, node.Bounds.Width, node.Bounds.Height, node.Attr("src"))
		default:
			warnings = append(warnings, fmt.Sprintf("%s: tag %q (element %s) has no vector mapping, visual contribution dropped",
				errors.ErrCodeUnmappedTag, node.TagName, node.ElementID))
		}

		for i := range node.Children {
			lower(&node.Children[i], x, y)
		}
	}
	for i := range n.Children {
		lower(&n.Children[i], 0, 0)
	}

	buf.WriteString("</svg>\n")

	return Artifact{
		Code:          buf.String(),
		Tests:         testScaffold(name, TargetSVG),
		Documentation: docScaffold(name, n, props),
		Warnings:      warnings,
	}
}
