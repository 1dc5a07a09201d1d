package app

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/treegrid/internal/config"
	"github.com/specialistvlad/treegrid/internal/tree"
)

// Query operations accepted by Forest.Query.
const (
	OpRoot               = "root"
	OpParent             = "parent"
	OpChildren           = "children"
	OpAncestors          = "ancestors"
	OpSelfAndAncestors   = "self-and-ancestors"
	OpDescendants        = "descendants"
	OpSelfAndDescendants = "self-and-descendants"
	OpSiblings           = "siblings"
	OpSelfAndSiblings    = "self-and-siblings"
	OpPath               = "path"
	OpAtLevel            = "at-level"
	OpLevel              = "level"
)

// QueryOps lists every supported operation.
var QueryOps = []string{
	OpRoot, OpParent, OpChildren,
	OpAncestors, OpSelfAndAncestors,
	OpDescendants, OpSelfAndDescendants,
	OpSiblings, OpSelfAndSiblings,
	OpPath, OpAtLevel, OpLevel,
}

// QueryResult is the answer to a single query. Level is set for every
// operation and holds the level of the queried node.
type QueryResult struct {
	Node  *tree.Node[*config.Record]
	Nodes []*tree.Node[*config.Record]
	Level int
}

// Query runs op against the node with the given id. level is only used by
// OpAtLevel.
func (f *Forest) Query(id, op string, level int) (*QueryResult, error) {
	if !slices.Contains(QueryOps, op) {
		return nil, fmt.Errorf("unknown query operation %q", op)
	}
	n, err := f.Index.MustGet(id)
	if err != nil {
		return nil, err
	}

	res := &QueryResult{Node: n, Level: n.Level()}
	switch op {
	case OpRoot:
		res.Nodes = []*tree.Node[*config.Record]{n.Root()}
	case OpParent:
		if p := n.Parent(); p != nil {
			res.Nodes = []*tree.Node[*config.Record]{p}
		}
	case OpChildren:
		res.Nodes = n.Children()
	case OpAncestors:
		res.Nodes = n.Ancestors()
	case OpSelfAndAncestors:
		res.Nodes = n.SelfAndAncestors()
	case OpDescendants:
		res.Nodes = n.Descendants()
	case OpSelfAndDescendants:
		res.Nodes = n.SelfAndDescendants()
	case OpSiblings:
		res.Nodes = n.Siblings()
	case OpSelfAndSiblings:
		res.Nodes = n.SelfAndSiblings()
	case OpPath:
		res.Nodes = n.Path()
	case OpAtLevel:
		res.Nodes = n.NodesAtLevel(level)
	case OpLevel:
		res.Nodes = []*tree.Node[*config.Record]{n}
	}
	return res, nil
}
