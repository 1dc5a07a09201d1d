package config

// Model is the unified, format-agnostic representation of every record read
// from the configured paths, in file and declaration order.
type Model struct {
	Records []*Record
}

// Record is one flat `(id, parent id, value)` entry.
type Record struct {
	ID string
	// ParentID is meaningful only when HasParent is true.
	ParentID  string
	HasParent bool
	// Value holds the record's attributes as native Go values.
	Value map[string]any
	// Source is the "file:line" the record was declared at.
	Source string
}

// RecordID extracts the id of a record for tree.BuildForest.
func RecordID(r *Record) string {
	return r.ID
}

// RecordParentID extracts the parent id of a record for tree.BuildForest.
func RecordParentID(r *Record) (string, bool) {
	return r.ParentID, r.HasParent
}

// Label returns the record's "name" attribute if it is a string, or its id.
func (r *Record) Label() string {
	if name, ok := r.Value["name"].(string); ok && name != "" {
		return name
	}
	return r.ID
}
