package layer

import (
	"encoding/json"
	"io"
	"os"

	"github.com/layerforge/layerforge/pkg/errors"
)

// MarshalTree serializes a layer tree to indented JSON. The output is
// deterministic for a given tree, which makes it usable as cache key
// material.
func MarshalTree(n *Node) ([]byte, error) {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTree, err, "marshal layer tree")
	}
	return data, nil
}

// UnmarshalTree deserializes a layer tree from JSON and validates that
// the root carries an element id.
func UnmarshalTree(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTree, err, "unmarshal layer tree")
	}
	if n.ElementID == "" {
		return nil, errors.New(errors.ErrCodeInvalidTree, "layer tree root has no element_id")
	}
	return &n, nil
}

// WriteTree writes the tree as indented JSON.
func WriteTree(n *Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(n); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidTree, err, "write layer tree")
	}
	return nil
}

// ReadTree reads and validates a tree from r.
func ReadTree(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTree, err, "read layer tree")
	}
	return UnmarshalTree(data)
}

// ReadTreeFile reads a tree from a JSON file.
func ReadTreeFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadTree(f)
}

// WriteTreeFile writes a tree to a JSON file.
func WriteTreeFile(n *Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()
	return WriteTree(n, f)
}

// Stats summarizes a layer tree.
type Stats struct {
	Nodes    int `json:"nodes"`
	Painted  int `json:"painted"`
	MaxDepth int `json:"max_depth"`
}

// TreeStats computes summary statistics for the subtree rooted at n.
func TreeStats(n *Node) Stats {
	var s Stats
	if n == nil {
		return s
	}
	var walk func(node *Node, depth int)
	walk = func(node *Node, depth int) {
		s.Nodes++
		if node.IsPainted() {
			s.Painted++
		}
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		for i := range node.Children {
			walk(&node.Children[i], depth+1)
		}
	}
	walk(n, 1)
	return s
}
