package codegen

import (
	"strings"
	"testing"

	"github.com/layerforge/layerforge/pkg/errors"
	"github.com/layerforge/layerforge/pkg/layer"
)

// componentTree is the normalized form of the capture scenario used across
// the engine tests: a root container holding a button and an image.
func componentTree() *layer.Node {
	return &layer.Node{
		ElementID:  "root",
		TagName:    "div",
		Bounds:     layer.Bounds{X: 0, Y: 0, Width: 100, Height: 50},
		Styles:     map[string]string{"backgroundColor": "#ffffff"},
		Attributes: map[string]string{"id": "root", "role": "main"},
		Children: []layer.Node{
			{
				ElementID: "btn-1",
				TagName:   "button",
				Bounds:    layer.Bounds{X: 10, Y: 10, Width: 30, Height: 10},
				Styles:    map[string]string{"backgroundColor": "#3366ff"},
				Attributes: map[string]string{
					"aria-label": "Submit",
				},
			},
			{
				ElementID:  "img-1",
				TagName:    "img",
				Bounds:     layer.Bounds{X: 50, Y: 10, Width: 20, Height: 20},
				Attributes: map[string]string{"src": "a.png", "alt": "preview"},
			},
		},
	}
}

func TestValidateTarget(t *testing.T) {
	for _, target := range []string{TargetReact, TargetVue, TargetHTML, TargetSVG} {
		if err := ValidateTarget(target); err != nil {
			t.Errorf("ValidateTarget(%q) error: %v", target, err)
		}
	}

	err := ValidateTarget("angular")
	if err == nil {
		t.Fatal("ValidateTarget() should reject unknown targets")
	}
	if !errors.Is(err, errors.ErrCodeInvalidTarget) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidTarget)
	}
}

func TestGenerateUnknownTargetFailsFast(t *testing.T) {
	_, err := Generate(componentTree(), Options{Target: "svelte"})
	if !errors.Is(err, errors.ErrCodeInvalidTarget) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidTarget)
	}
}

func TestGenerateNilTree(t *testing.T) {
	_, err := Generate(nil, DefaultOptions(TargetReact))
	if !errors.Is(err, errors.ErrCodeInvalidTree) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidTree)
	}
}

func TestGenerateDefaultsComponentName(t *testing.T) {
	a, err := Generate(componentTree(), Options{Target: TargetReact})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(a.Code, DefaultComponentName) {
		t.Errorf("code should use the default component name, got:\n%s", a.Code)
	}
}

// TestOpeningTagCounts pins the structural property that the react, vue,
// and html emitters each produce exactly one opening tag per tree node.
func TestOpeningTagCounts(t *testing.T) {
	tree := componentTree()

	for _, target := range []string{TargetReact, TargetVue, TargetHTML} {
		t.Run(target, func(t *testing.T) {
			a, err := Generate(tree, DefaultOptions(target))
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}

			counts := map[string]int{}
			tree.Walk(func(n *layer.Node) bool {
				counts[n.TagName]++
				return true
			})
			for tag, want := range counts {
				if got := strings.Count(a.Code, "<"+tag); got != want {
					t.Errorf("%s: %d opening <%s> tags, want %d\n%s", target, got, tag, want, a.Code)
				}
			}
		})
	}
}

func TestExtractPropsFixedContract(t *testing.T) {
	props := ExtractProps(componentTree())

	if len(props) != 2 {
		t.Fatalf("ExtractProps() returned %d props, want 2", len(props))
	}
	if props[0].Name != "className" || props[0].Type != PropTypeString || props[0].Required {
		t.Errorf("props[0] = %+v, want optional className string", props[0])
	}
	if props[1].Name != "children" || props[1].Type != PropTypeNode || props[1].Required {
		t.Errorf("props[1] = %+v, want optional children node", props[1])
	}

	// The contract holds regardless of tree content.
	minimal := &layer.Node{ElementID: "x", TagName: "span"}
	if got := ExtractProps(minimal); len(got) != 2 {
		t.Errorf("ExtractProps(minimal) returned %d props, want 2", len(got))
	}
}

func TestScaffoldsArePlaceholders(t *testing.T) {
	a, err := Generate(componentTree(), DefaultOptions(TargetReact))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if a.Tests == "" {
		t.Error("Tests scaffold should not be empty")
	}
	if !strings.Contains(a.Documentation, "## Props") {
		t.Errorf("Documentation should list props, got:\n%s", a.Documentation)
	}
	if !strings.Contains(a.Documentation, "`className`") || !strings.Contains(a.Documentation, "`children`") {
		t.Errorf("Documentation should name the two inferred props, got:\n%s", a.Documentation)
	}
}

func TestStylesheet(t *testing.T) {
	a, err := Generate(componentTree(), DefaultOptions(TargetReact))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(a.Styles, "#root {") {
		t.Errorf("stylesheet should contain a rule for #root, got:\n%s", a.Styles)
	}
	if !strings.Contains(a.Styles, "backgroundColor: #ffffff;") {
		t.Errorf("stylesheet should carry the root background, got:\n%s", a.Styles)
	}
}

func TestResponsiveStylesheet(t *testing.T) {
	opts := DefaultOptions(TargetHTML)
	opts.Responsive = true

	a, err := Generate(componentTree(), opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(a.Styles, "@media (max-width: 100px)") {
		t.Errorf("responsive stylesheet should contain a media query, got:\n%s", a.Styles)
	}
}
