// Package flex provides ownership and lifetime management for flexbox
// layout trees.
//
// A [Layout] owns a tree of engine nodes together with one caller-defined
// context value per node. Callers work through [Node], a small copyable
// handle that never owns anything: node and context memory live exactly as
// long as the owning Layout says they do. Operations requiring a live node
// panic on invalid handles; see the package-level error conventions on
// [Node.Valid].
package flex
