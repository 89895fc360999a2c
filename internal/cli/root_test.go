package cli

import (
	"testing"

	"github.com/layerforge/layerforge/pkg/layer"
)

func TestSetVersion(t *testing.T) {
	// Test that SetVersion updates the package-level variables
	SetVersion("1.0.0", "abc123", "2026-01-01")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2026-01-01" {
		t.Errorf("date = %q, want %q", date, "2026-01-01")
	}
}

func TestFlattenTree(t *testing.T) {
	tree := &layer.Node{
		ElementID: "root",
		TagName:   "div",
		Children: []layer.Node{
			{ElementID: "a", TagName: "span", Children: []layer.Node{
				{ElementID: "b", TagName: "img"},
			}},
		},
	}

	rows := flattenTree(tree)
	if len(rows) != 3 {
		t.Fatalf("flattenTree() = %d rows, want 3", len(rows))
	}
	if rows[0].id != "root" || rows[0].depth != 0 {
		t.Errorf("row[0] = %+v, want root at depth 0", rows[0])
	}
	if rows[2].id != "b" || rows[2].depth != 2 {
		t.Errorf("row[2] = %+v, want b at depth 2", rows[2])
	}
}

func TestArtifactExtCoversAllTargets(t *testing.T) {
	for _, target := range []string{"react", "vue", "html", "svg"} {
		if artifactExt[target] == "" {
			t.Errorf("artifactExt missing entry for %q", target)
		}
	}
}
