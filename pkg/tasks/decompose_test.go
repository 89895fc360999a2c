package tasks

import (
	"testing"

	"github.com/layerforge/layerforge/pkg/layer"
)

func TestDecomposeFixedPipeline(t *testing.T) {
	root := &layer.Node{ElementID: "root", TagName: "div"}

	got := Decompose("cmp-1", root, "react")

	if len(got) != PipelineLength {
		t.Fatalf("Decompose() returned %d tasks, want %d", len(got), PipelineLength)
	}

	wantOrder := []Type{
		TypeExtractStructure,
		TypeApplyStyleGuide,
		TypeGenerateCode,
		TypeGenerateVectorVariant,
		TypeValidateAccessibility,
		TypeTestResponsive,
		TypeGenerateDocs,
	}

	for i, task := range got {
		if task.Type != wantOrder[i] {
			t.Errorf("task[%d].Type = %q, want %q", i, task.Type, wantOrder[i])
		}
		if task.Priority != i+1 {
			t.Errorf("task[%d].Priority = %d, want %d", i, task.Priority, i+1)
		}
		if task.Status != StatusPending {
			t.Errorf("task[%d].Status = %q, want pending", i, task.Status)
		}
		if task.ComponentID != "cmp-1" {
			t.Errorf("task[%d].ComponentID = %q, want cmp-1", i, task.ComponentID)
		}
		if task.ID == "" {
			t.Errorf("task[%d] has no id", i)
		}
		if task.Description == "" {
			t.Errorf("task[%d] has no description", i)
		}
	}
}

func TestDecomposePrioritiesStrictlyIncreasing(t *testing.T) {
	got := Decompose("cmp-2", &layer.Node{ElementID: "x", TagName: "div"}, "vue")

	for i := 1; i < len(got); i++ {
		if got[i].Priority <= got[i-1].Priority {
			t.Errorf("priorities not strictly increasing at %d: %d then %d",
				i, got[i-1].Priority, got[i].Priority)
		}
	}
}

func TestDecomposeMetadataContext(t *testing.T) {
	root := &layer.Node{ElementID: "hero", TagName: "section"}

	got := Decompose("cmp-3", root, "html")

	if got[0].Metadata["layer_id"] != "hero" {
		t.Errorf("extract-structure metadata layer_id = %v, want hero", got[0].Metadata["layer_id"])
	}
	if got[2].Metadata["target"] != "html" {
		t.Errorf("generate-code metadata target = %v, want html", got[2].Metadata["target"])
	}
}

func TestDecomposeUniqueIDs(t *testing.T) {
	got := Decompose("cmp-4", nil, "svg")

	seen := map[string]bool{}
	for _, task := range got {
		if seen[task.ID] {
			t.Errorf("duplicate task id %q", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestDecomposeNilRoot(t *testing.T) {
	got := Decompose("cmp-5", nil, "react")
	if len(got) != PipelineLength {
		t.Fatalf("Decompose(nil root) returned %d tasks, want %d", len(got), PipelineLength)
	}
	if got[0].Metadata["layer_id"] != "" {
		t.Errorf("layer_id = %v, want empty for nil root", got[0].Metadata["layer_id"])
	}
}
