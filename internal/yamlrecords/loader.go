// Package yamlrecords reads flat records from YAML and JSON files into the
// format-agnostic config.Model.
//
// Every file holds a top-level `records` list:
//
//	records:
//	  - id: 1
//	    value: {name: Company}
//	  - id: 2
//	    parent: 1
//	    value: {name: Engineering}
//
// JSON documents with the same shape are read by the same decoder.
package yamlrecords

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/specialistvlad/treegrid/internal/config"
	"github.com/specialistvlad/treegrid/internal/ctxlog"
	"github.com/specialistvlad/treegrid/internal/fsutil"
)

// Extensions lists the file extensions picked up when walking directories.
var Extensions = []string{".yaml", ".yml", ".json"}

type fileRoot struct {
	Records []recordEntry `yaml:"records"`
}

type recordEntry struct {
	ID     any            `yaml:"id"`
	Parent any            `yaml:"parent"`
	Value  map[string]any `yaml:"value"`
}

// Loader implements config.Loader for YAML and JSON files.
type Loader struct{}

// NewLoader creates a new YAML/JSON record loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every YAML or JSON file found under paths.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered record files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		records, err := Decode(file, data)
		if err != nil {
			return nil, err
		}
		logger.Debug("Decoded record file.", "path", file, "record_count", len(records))
		model.Records = append(model.Records, records...)
	}

	logger.Debug("YAML loading complete.", "record_count", len(model.Records))
	return model, nil
}

// Decode parses one YAML or JSON document. name is used for error messages
// and record sources only.
func Decode(name string, data []byte) ([]*config.Record, error) {
	var root fileRoot
	if err := yaml.UnmarshalWithOptions(data, &root, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	records := make([]*config.Record, 0, len(root.Records))
	for i, entry := range root.Records {
		source := fmt.Sprintf("%s:records[%d]", name, i)
		id, err := scalarID(entry.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: id: %w", source, err)
		}
		rec := &config.Record{
			ID:     id,
			Value:  map[string]any{},
			Source: source,
		}
		if entry.Parent != nil {
			parentID, err := scalarID(entry.Parent)
			if err != nil {
				return nil, fmt.Errorf("%s: parent: %w", source, err)
			}
			rec.ParentID = parentID
			rec.HasParent = true
		}
		for k, v := range entry.Value {
			rec.Value[k] = normalize(v)
		}
		records = append(records, rec)
	}
	return records, nil
}

// scalarID renders a decoded id as a string. Numbers and strings are
// accepted; anything else is rejected.
func scalarID(v any) (string, error) {
	switch id := v.(type) {
	case nil:
		return "", fmt.Errorf("is required")
	case string:
		if id == "" {
			return "", fmt.Errorf("must not be empty")
		}
		return id, nil
	case int, int64, uint64:
		return fmt.Sprint(id), nil
	case float64:
		if id == math.Trunc(id) {
			return fmt.Sprintf("%.0f", id), nil
		}
		return fmt.Sprint(id), nil
	default:
		return "", fmt.Errorf("must be a string or number, got %T", v)
	}
}

// normalize folds the integer kinds the decoder may produce into int64 and
// recurses into collections.
func normalize(v any) any {
	switch val := v.(type) {
	case int:
		return int64(val)
	case uint64:
		if val <= math.MaxInt64 {
			return int64(val)
		}
		return val
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	default:
		return v
	}
}
