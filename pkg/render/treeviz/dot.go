package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/layerforge/layerforge/pkg/layer"
)

// Options configures layer tree diagram rendering.
type Options struct {
	// Detailed includes bounds and paint status in node labels.
	// When false, only the tag and element id are shown.
	Detailed bool
}

// ToDOT converts a layer tree to Graphviz DOT format for inspection.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Unpainted elements are rendered with dashed outlines and grey fill to
// distinguish them from painted ones.
func ToDOT(root *layer.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	root.Walk(func(n *layer.Node) bool {
		label := fmtLabel(n, opts.Detailed)
		attrs := fmtAttrs(n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ElementID, strings.Join(attrs, ", "))
		return true
	})

	buf.WriteString("\n")
	root.Walk(func(n *layer.Node) bool {
		for i := range n.Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.ElementID, n.Children[i].ElementID)
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *layer.Node, detailed bool) string {
	head := fmt.Sprintf("<%s> %s", n.TagName, n.ElementID)
	if !detailed {
		return head
	}

	parts := []string{
		fmt.Sprintf("bounds: %.0f,%.0f %.0fx%.0f", n.Bounds.X, n.Bounds.Y, n.Bounds.Width, n.Bounds.Height),
	}
	if n.PaintStatus != "" {
		parts = append(parts, "paint: "+n.PaintStatus)
	}
	if len(n.Styles) > 0 {
		parts = append(parts, fmt.Sprintf("styles: %d", len(n.Styles)))
	}

	return head + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n *layer.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if !n.IsPainted() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
