package codegen

import (
	"strings"
	"testing"
)

func TestEmitHTMLMarkupShape(t *testing.T) {
	a, err := Generate(componentTree(), DefaultOptions(TargetHTML))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, want := range []string{
		`<div id="root" role="main" style="backgroundColor: #ffffff">`,
		`<button aria-label="Submit" style="backgroundColor: #3366ff">`,
		`<img alt="preview" src="a.png">`,
		"</button>",
		"</div>",
	} {
		if !strings.Contains(a.Code, want) {
			t.Errorf("code missing %q:\n%s", want, a.Code)
		}
	}
}

func TestEmitHTMLVoidTags(t *testing.T) {
	a, err := Generate(componentTree(), DefaultOptions(TargetHTML))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if strings.Contains(a.Code, "</img>") {
		t.Errorf("img is a void tag and must not close:\n%s", a.Code)
	}
}

func TestEmitHTMLAttributesCopiedThrough(t *testing.T) {
	a, err := Generate(componentTree(), DefaultOptions(TargetHTML))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	// Static markup copies every attribute, including id.
	if !strings.Contains(a.Code, `id="root"`) {
		t.Errorf("id attribute should copy through:\n%s", a.Code)
	}
}

func TestEmitHTMLFlattenedStyleOrder(t *testing.T) {
	a, err := Generate(componentTree(), DefaultOptions(TargetHTML))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// Deterministic output: the same tree emits the same markup.
	b, err := Generate(componentTree(), DefaultOptions(TargetHTML))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if a.Code != b.Code {
		t.Error("html emission should be deterministic")
	}
}
