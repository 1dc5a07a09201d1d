// Package forestindex provides a keyed, read-only view over a built forest.
//
// # Why Forest Index Exists
//
// tree.Node answers structural questions (ancestors, siblings, levels) once a
// caller holds a node. Callers usually start from a record id instead, so the
// index maps ids back to the nodes produced by tree.BuildForest.
//
// This separation keeps the tree package free of any notion of keys:
//   - **Clarity:** structural queries stay on the node, lookups stay here
//   - **Testability:** the index can be validated independently of loading
//
// # Lifecycle
//
//  1. **Created** once from the roots returned by the builder
//  2. **Queried** by id while answering `query`, and listed by `validate`
//
// The index is not refreshed. A forest mutated after New needs a new index.
package forestindex
