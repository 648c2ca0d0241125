// Package syntax defines the tree model consumed by the alignment engine.
//
// A tree is a forest of *Node values: atoms (leaves) and lists (delimited
// sequences of children). Nodes are allocated from an Arena and never
// copied or moved once built; the only mutable field on a Node is its
// Change slot, written exactly once by the route marker after alignment.
//
// Metadata (ancestor depth, preorder-successor link, descendant count,
// content hash, first/last source line) is computed once, in bulk, by
// Freeze. Before Freeze runs the metadata is zero-valued and must not be
// read; after Freeze the tree is immutable except for the Change slot.
//
// Complexity:
//   - Freeze: O(N) time and space for a forest of N nodes.
//   - EqualContent: O(1) expected (hash compare), O(N) worst case on a
//     hash collision (deep textual compare).
package syntax
