// Package layer defines the captured layer tree that every pipeline
// stage consumes.
//
// A layer tree is a DOM-shaped snapshot of a rendered page: each [Node]
// carries the element's tag, absolute bounds, computed styles, raw
// attributes, paint status, and its children in document order. Trees
// arrive as JSON from capture tooling and are read with [ReadTree] or
// [ReadTreeFile].
//
// The package deliberately knows nothing about code generation or
// persistence. It provides the tree type, traversal ([Node.Walk],
// [Node.Find]), deep copying ([Node.Clone]), serialization, and summary
// statistics ([TreeStats]); everything downstream builds on those.
package layer
