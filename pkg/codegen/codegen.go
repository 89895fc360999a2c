package codegen

import (
	"fmt"
	"strings"

	"github.com/layerforge/layerforge/pkg/errors"
	"github.com/layerforge/layerforge/pkg/layer"
)

// =============================================================================
// Targets - Single Source of Truth
// =============================================================================

// Supported code generation targets.
const (
	TargetReact = "react" // declarative function component
	TargetVue   = "vue"   // template + definition block
	TargetHTML  = "html"  // static markup
	TargetSVG   = "svg"   // vector graphics
)

// ValidTargets is the set of supported generation targets.
var ValidTargets = map[string]bool{
	TargetReact: true,
	TargetVue:   true,
	TargetHTML:  true,
	TargetSVG:   true,
}

// DefaultComponentName is used when options do not name the component.
const DefaultComponentName = "GeneratedComponent"

// ValidateTarget checks that a target is supported.
// Unknown targets are a contract violation and must fail fast.
func ValidateTarget(target string) error {
	if !ValidTargets[target] {
		return errors.New(errors.ErrCodeInvalidTarget,
			"unsupported target: %q (must be one of: react, vue, html, svg)", target)
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// Options configures a single emission. It is a closed configuration object:
// the target must be one of the four supported values.
type Options struct {
	Target        string `json:"target"`
	ComponentName string `json:"component_name,omitempty"`
	StyleGuide    string `json:"style_guide,omitempty"`
	IncludeStyles bool   `json:"include_styles,omitempty"`
	// IncludeAccessibility passes ARIA/role attributes through verbatim.
	// The engine never audits them.
	IncludeAccessibility bool `json:"include_accessibility,omitempty"`
	Responsive           bool `json:"responsive,omitempty"`
}

// DefaultOptions returns options for the given target with styles and
// accessibility passthrough enabled.
func DefaultOptions(target string) Options {
	return Options{
		Target:               target,
		ComponentName:        DefaultComponentName,
		IncludeStyles:        true,
		IncludeAccessibility: true,
	}
}

// Validate checks the target and applies the component name default.
func (o *Options) Validate() error {
	if err := ValidateTarget(o.Target); err != nil {
		return err
	}
	if o.ComponentName == "" {
		o.ComponentName = DefaultComponentName
	}
	return nil
}

// exportName returns the component name shaped as an exported identifier.
func (o *Options) exportName() string {
	name := strings.TrimSpace(o.ComponentName)
	if name == "" {
		name = DefaultComponentName
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// =============================================================================
// Artifact
// =============================================================================

// Artifact is the output of one emission.
type Artifact struct {
	Code          string   `json:"code" bson:"code"`
	Styles        string   `json:"styles,omitempty" bson:"styles,omitempty"`
	Tests         string   `json:"tests,omitempty" bson:"tests,omitempty"`
	Documentation string   `json:"documentation,omitempty" bson:"documentation,omitempty"`
	Warnings      []string `json:"warnings,omitempty" bson:"warnings,omitempty"`
}

// =============================================================================
// Generate - Target Dispatch
// =============================================================================

// Generate emits the source artifacts for a component tree in the style
// selected by opts.Target. It is a pure function: the tree is not mutated
// and no state is shared between calls, so distinct targets may be emitted
// concurrently for the same tree.
func Generate(n *layer.Node, opts Options) (Artifact, error) {
	if n == nil {
		return Artifact{}, errors.New(errors.ErrCodeInvalidTree, "component tree is nil")
	}
	if err := opts.Validate(); err != nil {
		return Artifact{}, err
	}

	switch opts.Target {
	case TargetReact:
		return emitReact(n, opts), nil
	case TargetVue:
		return emitVue(n, opts), nil
	case TargetHTML:
		return emitHTML(n, opts), nil
	case TargetSVG:
		return emitSVG(n, opts), nil
	default:
		// Unreachable after Validate, kept so the dispatch never defaults.
		return Artifact{}, errors.New(errors.ErrCodeInvalidTarget, "unsupported target: %q", opts.Target)
	}
}

// =============================================================================
// Shared Scaffolds
// =============================================================================

// testScaffold returns the placeholder test block attached to generated
// components. Full test generation is intentionally out of scope.
func testScaffold(name, target string) string {
	return fmt.Sprintf(`describe('%s', () => {
  it('renders without crashing', () => {
    // scaffold for the %s component (%s target)
  });
});
`, name, name, target)
}

// docScaffold returns the placeholder documentation for a component.
func docScaffold(name string, n *layer.Node, props []Prop) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "Generated from layer `%s` (%d elements).\n\n", n.ElementID, n.Count())
	b.WriteString("## Props\n\n")
	for _, p := range props {
		req := "optional"
		if p.Required {
			req = "required"
		}
		fmt.Fprintf(&b, "- `%s` (%s, %s)\n", p.Name, p.Type, req)
	}
	return b.String()
}

// stylesheet flattens every styled node into a rule keyed by element id.
// With Responsive set, a single max-width block scales the component down
// on narrow viewports.
func stylesheet(n *layer.Node, opts Options) string {
	var b strings.Builder
	n.Walk(func(node *layer.Node) bool {
		if len(node.Styles) == 0 {
			return true
		}
		fmt.Fprintf(&b, "#%s {\n", node.ElementID)
		for _, k := range sortedKeys(node.Styles) {
			fmt.Fprintf(&b, "  %s: %s;\n", k, node.Styles[k])
		}
		b.WriteString("}\n\n")
		return true
	})
	if opts.Responsive {
		fmt.Fprintf(&b, "@media (max-width: %.0fpx) {\n  #%s {\n    width: 100%%;\n    height: auto;\n  }\n}\n",
			n.Bounds.Width, n.ElementID)
	}
	return b.String()
}
