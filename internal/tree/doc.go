// Package tree provides a generic, in-memory hierarchy of nodes and the
// builder that turns flat keyed records into a forest of such nodes.
//
// # Ownership
//
// Every Node owns an ordered slice of children. The parent pointer is a plain
// back reference: it is set when a node is attached and cleared when it is
// disconnected. A node belongs to at most one parent's child list, and the
// parent/child graph never contains a cycle.
//
// # Re-parenting
//
// A node that already has a parent cannot be attached somewhere else. Call
// Disconnect first; the detached node becomes a root that keeps its own
// subtree.
//
// # Identity
//
// Two nodes are the same node only when they are the same pointer. Payload
// comparison is a separate concern, see ValueEqual.
//
// # Thread-Safety
//
// Node is not safe for concurrent mutation. Callers that share a tree between
// goroutines must serialize writes themselves.
package tree
