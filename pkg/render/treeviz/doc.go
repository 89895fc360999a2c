// Package treeviz renders layer trees as node-link diagrams for inspection.
//
// # Overview
//
// This package produces directed tree visualizations using Graphviz, where
// each captured element appears as a box connected to its children. It is
// a debugging aid: before committing to a code generation run, a quick
// diagram shows what a selector would actually isolate.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := treeviz.ToDOT(tree, treeviz.Options{Detailed: true})
//	svg, err := treeviz.RenderSVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include bounds, paint status, and
//     style counts
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded
// box nodes. Unpainted elements are dashed and grey.
package treeviz
