package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/specialistvlad/treegrid/internal/config"
	"github.com/specialistvlad/treegrid/internal/tree"
)

// List writes nodes as a flat list without their subtrees. Text output has
// one `label (id)` line per node; json and yaml emit childless documents that
// keep each node's level; flat emits records with their real parent ids.
func List(w io.Writer, output string, nodes []*tree.Node[*config.Record], opts Options) error {
	switch output {
	case "text", "":
		for _, n := range nodes {
			c := color.New(levelColors[n.Level()%len(levelColors)])
			if opts.Color {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
			if _, err := fmt.Fprintf(w, "%s (%s)\n", c.Sprint(n.Value().Label()), n.Value().ID); err != nil {
				return err
			}
		}
		return nil
	case "json", "yaml":
		docs := make([]*Document, 0, len(nodes))
		for _, n := range nodes {
			docs = append(docs, &Document{ID: n.Value().ID, Level: n.Level(), Value: n.Value().Value})
		}
		if output == "yaml" {
			data, err := yaml.Marshal(docs)
			if err != nil {
				return fmt.Errorf("failed to encode YAML: %w", err)
			}
			_, err = w.Write(data)
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	case "flat":
		records := make([]flatRecord, 0, len(nodes))
		for _, n := range nodes {
			records = append(records, toFlatRecord(n))
		}
		return writeFlat(w, records)
	default:
		return fmt.Errorf("unknown output %q", output)
	}
}

// toFlatRecord describes a node by its own record and its parent's id.
func toFlatRecord(n *tree.Node[*config.Record]) flatRecord {
	fr := flatRecord{ID: n.Value().ID, Value: n.Value().Value}
	if p := n.Parent(); p != nil {
		parent := p.Value().ID
		fr.Parent = &parent
	}
	return fr
}
