// Package render turns a forest of records into text, JSON or YAML output.
package render

import (
	"github.com/specialistvlad/treegrid/internal/config"
	"github.com/specialistvlad/treegrid/internal/tree"
)

// Options controls every renderer.
type Options struct {
	// Color enables ANSI colors in text output.
	Color bool
	// MaxDepth hides nodes deeper than this many levels below each rendered
	// root. Zero means unlimited.
	MaxDepth int
}

// Document is the nested form of one node used by the JSON and YAML renderers.
type Document struct {
	ID       string         `json:"id" yaml:"id"`
	Level    int            `json:"level" yaml:"level"`
	Value    map[string]any `json:"value,omitempty" yaml:"value,omitempty"`
	Children []*Document    `json:"children,omitempty" yaml:"children,omitempty"`
}

// ToDocuments converts each root and its subtree into a Document. Levels are
// absolute, so rendering a subtree keeps the depth it has in its tree.
func ToDocuments(roots []*tree.Node[*config.Record], opts Options) []*Document {
	docs := make([]*Document, 0, len(roots))
	for _, root := range roots {
		docs = append(docs, toDocument(root, opts.MaxDepth))
	}
	return docs
}

// toDocument builds the document tree iteratively, mirroring the node tree.
func toDocument(root *tree.Node[*config.Record], maxDepth int) *Document {
	type frame struct {
		node  *tree.Node[*config.Record]
		doc   *Document
		depth int
	}
	base := root.Level()
	newDoc := func(n *tree.Node[*config.Record], depth int) *Document {
		return &Document{ID: n.Value().ID, Level: base + depth, Value: n.Value().Value}
	}

	top := newDoc(root, 0)
	stack := []frame{{root, top, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if maxDepth > 0 && f.depth >= maxDepth {
			continue
		}
		for _, child := range f.node.Children() {
			doc := newDoc(child, f.depth+1)
			f.doc.Children = append(f.doc.Children, doc)
			stack = append(stack, frame{child, doc, f.depth + 1})
		}
	}
	return top
}
