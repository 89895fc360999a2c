package layer

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestTreeRoundTrip(t *testing.T) {
	orig := demoTree()

	data, err := MarshalTree(orig)
	if err != nil {
		t.Fatalf("MarshalTree() error: %v", err)
	}

	got, err := UnmarshalTree(data)
	if err != nil {
		t.Fatalf("UnmarshalTree() error: %v", err)
	}

	if got.ElementID != orig.ElementID {
		t.Errorf("ElementID = %q, want %q", got.ElementID, orig.ElementID)
	}
	if len(got.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(got.Children))
	}
	if got.Children[1].Attributes["src"] != "a.png" {
		t.Errorf("img src = %q, want a.png", got.Children[1].Attributes["src"])
	}
	if got.Bounds != orig.Bounds {
		t.Errorf("Bounds = %+v, want %+v", got.Bounds, orig.Bounds)
	}
	if got.PaintStatus != StatusPainted {
		t.Errorf("PaintStatus = %q, want painted", got.PaintStatus)
	}
}

func TestReadTreeRejectsEmptyRoot(t *testing.T) {
	_, err := ReadTree(strings.NewReader(`{"tag_name": "div"}`))
	if err == nil {
		t.Fatal("ReadTree() should reject a tree without element_id")
	}
}

func TestReadTreeRejectsMalformedJSON(t *testing.T) {
	_, err := ReadTree(strings.NewReader(`{not json`))
	if err == nil {
		t.Fatal("ReadTree() should reject malformed JSON")
	}
}

func TestWriteTreeDeterministic(t *testing.T) {
	tree := demoTree()

	var a, b bytes.Buffer
	if err := WriteTree(tree, &a); err != nil {
		t.Fatalf("WriteTree() error: %v", err)
	}
	if err := WriteTree(tree, &b); err != nil {
		t.Fatalf("WriteTree() error: %v", err)
	}
	if a.String() != b.String() {
		t.Error("WriteTree() output should be deterministic for the same tree")
	}
}

func TestTreeFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")

	if err := WriteTreeFile(demoTree(), path); err != nil {
		t.Fatalf("WriteTreeFile() error: %v", err)
	}

	got, err := ReadTreeFile(path)
	if err != nil {
		t.Fatalf("ReadTreeFile() error: %v", err)
	}
	if got.Count() != 3 {
		t.Errorf("Count() = %d, want 3", got.Count())
	}
}

func TestReadTreeFileMissing(t *testing.T) {
	_, err := ReadTreeFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("ReadTreeFile() should fail for a missing file")
	}
}
