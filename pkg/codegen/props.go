package codegen

import "github.com/layerforge/layerforge/pkg/layer"

// Prop types used in generated interface declarations.
const (
	PropTypeString = "string"
	PropTypeNode   = "node"
)

// Prop describes one entry of a component's inferred public interface.
type Prop struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// ExtractProps infers the public interface of a component tree.
//
// The current heuristic is a deliberate placeholder: it returns the fixed
// minimal interface of className and children for every tree, in that
// order. Emitters build their interface declarations assuming exactly these
// two entries exist, so the contract must not change without updating all
// four targets together.
func ExtractProps(_ *layer.Node) []Prop {
	return []Prop{
		{Name: "className", Type: PropTypeString, Required: false},
		{Name: "children", Type: PropTypeNode, Required: false},
	}
}
