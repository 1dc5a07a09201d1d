package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/specialistvlad/treegrid/internal/config"
	"github.com/specialistvlad/treegrid/internal/tree"
)

// JSON writes the forest as an indented JSON array of nested documents.
func JSON(w io.Writer, roots []*tree.Node[*config.Record], opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocuments(roots, opts)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// YAML writes the forest as a YAML sequence of nested documents.
func YAML(w io.Writer, roots []*tree.Node[*config.Record], opts Options) error {
	data, err := yaml.Marshal(ToDocuments(roots, opts))
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// flatRecord mirrors the input format read by the yamlrecords package.
type flatRecord struct {
	ID     string         `yaml:"id"`
	Parent *string        `yaml:"parent,omitempty"`
	Value  map[string]any `yaml:"value,omitempty"`
}

// Flat writes the forest back as a YAML `records:` list in pre-order, the
// same shape the YAML loader reads. MaxDepth does not apply.
func Flat(w io.Writer, roots []*tree.Node[*config.Record], _ Options) error {
	flat := tree.Flatten(roots, config.RecordID)
	records := make([]flatRecord, 0, len(flat))
	for _, r := range flat {
		fr := flatRecord{ID: r.ID, Value: r.Value.Value}
		if r.HasParent {
			parent := r.ParentID
			fr.Parent = &parent
		}
		records = append(records, fr)
	}
	return writeFlat(w, records)
}

// writeFlat encodes records under a top-level `records` key.
func writeFlat(w io.Writer, records []flatRecord) error {
	data, err := yaml.Marshal(struct {
		Records []flatRecord `yaml:"records"`
	}{records})
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Func is the common signature of every renderer.
type Func func(w io.Writer, roots []*tree.Node[*config.Record], opts Options) error

// ForOutput selects a renderer by output name.
func ForOutput(output string) (Func, error) {
	switch output {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml":
		return YAML, nil
	case "flat":
		return Flat, nil
	default:
		return nil, fmt.Errorf("unknown output %q", output)
	}
}
