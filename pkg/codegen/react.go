package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/layerforge/layerforge/pkg/layer"
)

// emitReact lowers a component tree to a declarative function component.
// The body returns nested element expressions mirroring the tree; the root
// element binds the className prop and renders children at the end.
func emitReact(n *layer.Node, opts Options) Artifact {
	name := opts.exportName()
	props := ExtractProps(n)

	var buf bytes.Buffer
	buf.WriteString("import React from 'react';\n\n")
	fmt.Fprintf(&buf, "interface %sProps {\n", name)
	buf.WriteString("  className?: string;\n")
	buf.WriteString("  children?: React.ReactNode;\n")
	buf.WriteString("}\n\n")
	fmt.Fprintf(&buf, "export const %s: React.FC<%sProps> = ({ className, children }) => {\n", name, name)
	buf.WriteString("  return (\n")

	// The element expressions sit two levels inside the function body.
	const base = 2

	open := func(buf *bytes.Buffer, node *layer.Node, depth int) {
		attrs := reactAttrs(node, node == n, opts)
		if node != n && len(node.Children) == 0 {
			fmt.Fprintf(buf, "%s<%s%s />\n", pad(base+depth), node.TagName, attrs)
			return
		}
		fmt.Fprintf(buf, "%s<%s%s>\n", pad(base+depth), node.TagName, attrs)
	}
	closeFn := func(buf *bytes.Buffer, node *layer.Node, depth int) {
		if node == n {
			fmt.Fprintf(buf, "%s{children}\n", pad(base+depth+1))
		} else if len(node.Children) == 0 {
			return
		}
		fmt.Fprintf(buf, "%s</%s>\n", pad(base+depth), node.TagName)
	}
	walkTree(&buf, n, 0, open, closeFn)

	buf.WriteString("  );\n")
	buf.WriteString("};\n\n")
	fmt.Fprintf(&buf, "export default %s;\n", name)

	a := Artifact{
		Code:          buf.String(),
		Tests:         testScaffold(name, TargetReact),
		Documentation: docScaffold(name, n, props),
	}
	if opts.IncludeStyles {
		a.Styles = stylesheet(n, opts)
	}
	return a
}

// reactAttrs renders the attribute list for one element expression.
// class-like attributes become a className binding, ARIA/role hints pass
// through verbatim, and remaining styles are embedded as an inline style map.
func reactAttrs(n *layer.Node, isRoot bool, opts Options) string {
	var parts []string

	switch {
	case isRoot && n.Attr("class") != "":
		parts = append(parts, fmt.Sprintf("className={className ?? '%s'}", n.Attr("class")))
	case isRoot:
		parts = append(parts, "className={className}")
	case n.Attr("class") != "":
		parts = append(parts, fmt.Sprintf("className=%q", n.Attr("class")))
	}

	for _, k := range sortedKeys(n.Attributes) {
		switch {
		case k == "class":
			// Handled above as the className binding.
		case isAccessibilityAttr(k):
			if opts.IncludeAccessibility {
				parts = append(parts, fmt.Sprintf("%s=%q", k, n.Attributes[k]))
			}
		default:
			parts = append(parts, fmt.Sprintf("%s=%q", k, n.Attributes[k]))
		}
	}

	if opts.IncludeStyles && len(n.Styles) > 0 {
		parts = append(parts, "style={"+jsStyleObject(n.Styles)+"}")
	}

	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

// jsStyleObject renders style declarations as a JS object literal with
// deterministic key order. Keys that are not bare identifiers are quoted.
func jsStyleObject(styles map[string]string) string {
	parts := make([]string, 0, len(styles))
	for _, k := range sortedKeys(styles) {
		key := k
		if strings.ContainsAny(k, "-: ") {
			key = "'" + k + "'"
		}
		parts = append(parts, fmt.Sprintf("%s: '%s'", key, styles[k]))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
