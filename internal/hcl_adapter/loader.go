package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/treegrid/internal/config"
	"github.com/specialistvlad/treegrid/internal/ctxlog"
	"github.com/specialistvlad/treegrid/internal/fsutil"
)

// Extensions lists the file extensions picked up when walking directories.
var Extensions = []string{".hcl"}

// fileSchema accepts only `record "<id>" { ... }` blocks at the top level.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "record", LabelNames: []string{"id"}},
	},
}

// recordBody is decoded from the body of a single record block.
type recordBody struct {
	Parent hcl.Expression `hcl:"parent,optional"`
	Remain hcl.Body       `hcl:",remain"`
}

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL record loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every HCL file found under paths and returns their records in
// file and declaration order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		records, err := l.decodeFile(ctxlog.With(ctx, "path", file), hclFile.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
		}
		model.Records = append(model.Records, records...)
	}

	logger.Debug("HCL loading complete.", "record_count", len(model.Records))
	return model, nil
}

// decodeFile translates the record blocks of one file body.
func (l *Loader) decodeFile(ctx context.Context, body hcl.Body) ([]*config.Record, error) {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	records := make([]*config.Record, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		rec, err := l.translateRecord(ctx, block)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// translateRecord turns one record block into a config.Record.
func (l *Loader) translateRecord(ctx context.Context, block *hcl.Block) (*config.Record, error) {
	var rb recordBody
	if diags := gohcl.DecodeBody(block.Body, nil, &rb); diags.HasErrors() {
		return nil, diags
	}

	rec := &config.Record{
		ID:     block.Labels[0],
		Value:  map[string]any{},
		Source: fmt.Sprintf("%s:%d", block.DefRange.Filename, block.DefRange.Start.Line),
	}
	logger := ctxlog.FromContext(ctx).With("record_id", rec.ID, "source", rec.Source)

	if isExprDefined(rb.Parent) {
		parentID, err := exprToID(rb.Parent)
		if err != nil {
			return nil, fmt.Errorf("record %q: parent: %w", rec.ID, err)
		}
		rec.ParentID = parentID
		rec.HasParent = true
	}

	attrs, diags := rb.Remain.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("record %q: attribute %q: %w", rec.ID, name, err)
		}
		rec.Value[name] = native
	}

	logger.Debug("Translated record block.", "has_parent", rec.HasParent, "attributes", len(rec.Value))
	return rec, nil
}

// isExprDefined reports whether an optional attribute was written in the
// source. Omitted optional attributes are decoded as zero-width placeholder
// expressions, so a nil check alone is not enough.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}
