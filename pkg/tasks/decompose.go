package tasks

import (
	"fmt"

	"github.com/layerforge/layerforge/pkg/layer"
)

// PipelineLength is the number of tasks every decomposition produces.
const PipelineLength = 7

// Decompose expands a generated component into its fixed refinement
// pipeline: exactly seven tasks with strictly increasing priorities 1..7,
// all pending. Each task's metadata carries the minimal context its kind
// needs (originating layer id, chosen target).
//
// Decompose itself is pure; persisting the batch is the caller's concern
// (see pipeline.Runner.DecomposeAndSave).
func Decompose(componentID string, root *layer.Node, target string) []Task {
	layerID := ""
	if root != nil {
		layerID = root.ElementID
	}

	return []Task{
		newTask(TypeExtractStructure, componentID,
			fmt.Sprintf("Extract element structure for component %s", componentID),
			1, map[string]any{"layer_id": layerID}),
		newTask(TypeApplyStyleGuide, componentID,
			fmt.Sprintf("Apply style guide to component %s", componentID),
			2, map[string]any{"layer_id": layerID, "target": target}),
		newTask(TypeGenerateCode, componentID,
			fmt.Sprintf("Generate %s code for component %s", target, componentID),
			3, map[string]any{"layer_id": layerID, "target": target}),
		newTask(TypeGenerateVectorVariant, componentID,
			fmt.Sprintf("Generate vector variant for component %s", componentID),
			4, map[string]any{"layer_id": layerID}),
		newTask(TypeValidateAccessibility, componentID,
			fmt.Sprintf("Validate accessibility attributes of component %s", componentID),
			5, map[string]any{"layer_id": layerID}),
		newTask(TypeTestResponsive, componentID,
			fmt.Sprintf("Test responsive behavior of component %s", componentID),
			6, map[string]any{"target": target}),
		newTask(TypeGenerateDocs, componentID,
			fmt.Sprintf("Generate documentation for component %s", componentID),
			7, map[string]any{"target": target}),
	}
}
