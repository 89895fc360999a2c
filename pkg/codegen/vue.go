package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/layerforge/layerforge/pkg/layer"
)

// emitVue lowers a component tree to a template block plus a definition
// block. The template tag structure mirrors the tree 1:1; the definition
// block exposes the inferred props.
func emitVue(n *layer.Node, opts Options) Artifact {
	name := opts.exportName()
	props := ExtractProps(n)

	var buf bytes.Buffer
	buf.WriteString("<template>\n")

	open := func(buf *bytes.Buffer, node *layer.Node, depth int) {
		attrs := vueAttrs(node, node == n, opts)
		fmt.Fprintf(buf, "%s<%s%s>\n", pad(depth+1), node.TagName, attrs)
	}
	closeFn := func(buf *bytes.Buffer, node *layer.Node, depth int) {
		fmt.Fprintf(buf, "%s</%s>\n", pad(depth+1), node.TagName)
	}
	walkTree(&buf, n, 0, open, closeFn)

	buf.WriteString("</template>\n\n")
	buf.WriteString("<script>\n")
	buf.WriteString("export default {\n")
	fmt.Fprintf(&buf, "  name: '%s',\n", name)
	buf.WriteString("  props: {\n")
	for _, p := range props {
		fmt.Fprintf(&buf, "    %s: { type: %s, required: %v },\n", p.Name, vuePropType(p.Type), p.Required)
	}
	buf.WriteString("  },\n")
	buf.WriteString("};\n")
	buf.WriteString("</script>\n")

	a := Artifact{
		Tests:         testScaffold(name, TargetVue),
		Documentation: docScaffold(name, n, props),
	}
	if opts.IncludeStyles {
		a.Styles = stylesheet(n, opts)
		buf.WriteString("\n<style scoped>\n")
		buf.WriteString(a.Styles)
		buf.WriteString("</style>\n")
	}
	a.Code = buf.String()
	return a
}

// vueAttrs renders the attribute list for one template tag. The root binds
// the className prop; everything else is copied through, with ARIA/role
// hints gated on the accessibility option and styles inlined as a flat
// style string.
func vueAttrs(n *layer.Node, isRoot bool, opts Options) string {
	var parts []string

	if isRoot {
		parts = append(parts, `:class="className"`)
	} else if n.Attr("class") != "" {
		parts = append(parts, fmt.Sprintf("class=%q", n.Attr("class")))
	}

	for _, k := range sortedKeys(n.Attributes) {
		switch {
		case k == "class":
		case isAccessibilityAttr(k):
			if opts.IncludeAccessibility {
				parts = append(parts, fmt.Sprintf("%s=%q", k, n.Attributes[k]))
			}
		default:
			parts = append(parts, fmt.Sprintf("%s=%q", k, n.Attributes[k]))
		}
	}

	if opts.IncludeStyles && len(n.Styles) > 0 {
		parts = append(parts, fmt.Sprintf("style=%q", inlineStyle(n.Styles)))
	}

	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

// vuePropType maps an inferred prop type to its runtime validator.
// The children entry has no single runtime type, so it validates as null
// (any type).
func vuePropType(t string) string {
	if t == PropTypeString {
		return "String"
	}
	return "null"
}
