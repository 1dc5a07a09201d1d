package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/specialistvlad/treegrid/internal/config"
	"github.com/specialistvlad/treegrid/internal/tree"
)

// levelColors cycles by node level.
var levelColors = []color.Attribute{
	color.FgCyan,
	color.FgGreen,
	color.FgYellow,
	color.FgMagenta,
	color.FgBlue,
}

// ShouldColor resolves a color mode ("auto", "always" or "never") for w.
// In auto mode color is used only when w is a terminal.
func ShouldColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Text writes the forest as an indented tree, one node per line:
//
//	Company (1)
//	├── Engineering (2)
//	│   └── Storage (3)
//	└── Sales (4)
func Text(w io.Writer, roots []*tree.Node[*config.Record], opts Options) error {
	type frame struct {
		node   *tree.Node[*config.Record]
		prefix string
		last   bool
		depth  int
	}

	paint := make([]*color.Color, len(levelColors))
	for i, attr := range levelColors {
		paint[i] = color.New(attr)
		if opts.Color {
			paint[i].EnableColor()
		} else {
			paint[i].DisableColor()
		}
	}
	dim := color.New(color.Faint)
	if opts.Color {
		dim.EnableColor()
	} else {
		dim.DisableColor()
	}

	for _, root := range roots {
		base := root.Level()
		stack := []frame{{node: root}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			branch, childPrefix := "", ""
			if f.depth > 0 {
				branch, childPrefix = "├── ", "│   "
				if f.last {
					branch, childPrefix = "└── ", "    "
				}
			}

			rec := f.node.Value()
			label := paint[(base+f.depth)%len(paint)].Sprint(rec.Label())
			if _, err := fmt.Fprintf(w, "%s%s%s %s\n", dim.Sprint(f.prefix), dim.Sprint(branch), label, dim.Sprintf("(%s)", rec.ID)); err != nil {
				return err
			}

			if opts.MaxDepth > 0 && f.depth >= opts.MaxDepth {
				continue
			}
			nextPrefix := f.prefix
			if f.depth > 0 {
				nextPrefix += childPrefix
			}
			children := f.node.Children()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{
					node:   children[i],
					prefix: nextPrefix,
					last:   i == len(children)-1,
					depth:  f.depth + 1,
				})
			}
		}
	}
	return nil
}
