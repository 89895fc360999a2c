// Package transform provides structural transformations over layer trees.
//
// # Overview
//
// Two transforms prepare a captured page tree for code emission:
//
//   - [Isolate] extracts an arbitrary sub-tree as an independent component,
//     selected by element id.
//   - [Normalize] rebases the isolated sub-tree's coordinate space so its
//     root sits at the origin.
//
// Both transforms are pure: they return new trees and never mutate their
// input.
//
// # Normalization Semantics
//
// Normalize rebases each node against its immediate parent's
// pre-normalization origin, then recurses one level down. The result is a
// chain of nested local offsets: summing a node's ancestor offsets
// reconstructs its original absolute position. Downstream consumers assume
// this additive composition, so the parent-relative rule is part of the
// contract and is pinned by tests - do not replace it with a single global
// rebase.
package transform
