// Package codegen emits source artifacts from normalized layer trees.
//
// # Overview
//
// A target selects one of four output styles:
//
//   - [TargetReact]: a declarative function component returning nested
//     element expressions
//   - [TargetVue]: a template block mirroring the tree plus a definition
//     block exposing inferred props
//   - [TargetHTML]: raw static markup with inline style strings
//   - [TargetSVG]: a vector-graphics lowering of the tree's visible boxes
//
// All emitters share one indent-tracked recursive descent (one output line
// group per node) and are pure functions over (tree, options) with no shared
// mutable state, so callers may run them concurrently for the same tree.
//
// # Usage
//
//	artifact, err := codegen.Generate(component, codegen.Options{
//	    Target:        codegen.TargetReact,
//	    ComponentName: "HeroCard",
//	    IncludeStyles: true,
//	})
//
// Unknown targets are a caller error and fail fast with
// errors.ErrCodeInvalidTarget; they are never silently defaulted.
//
// The svg emitter is lossy for tags without a primitive mapping. It still
// visits their children and records one warning per unmapped tag in
// [Artifact.Warnings] so the dropped visual information is surfaced.
package codegen
