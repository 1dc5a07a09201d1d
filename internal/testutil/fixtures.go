package testutil

import (
	"testing"

	"github.com/specialistvlad/treegrid/internal/config"
	"github.com/specialistvlad/treegrid/internal/tree"
	"github.com/stretchr/testify/require"
)

// SampleHCL declares the same forest as SampleRecords.
const SampleHCL = `
record "1" {
  name = "A"
}

record "2" {
  parent = "1"
  name   = "B"
}

record "3" {
  parent = "1"
  name   = "C"
}

record "4" {
  parent = "2"
  name   = "D"
}
`

// SampleRecords returns A(1) with children B(2) and C(3), and D(4) under B.
func SampleRecords() []*config.Record {
	rec := func(id, parent, name string) *config.Record {
		return &config.Record{
			ID:        id,
			ParentID:  parent,
			HasParent: parent != "",
			Value:     map[string]any{"name": name},
		}
	}
	return []*config.Record{
		rec("1", "", "A"),
		rec("2", "1", "B"),
		rec("3", "1", "C"),
		rec("4", "2", "D"),
	}
}

// SampleForest builds SampleRecords.
func SampleForest(t *testing.T) []*tree.Node[*config.Record] {
	t.Helper()
	return BuildRecords(t, SampleRecords())
}

// BuildRecords builds records into a forest and fails the test on error.
func BuildRecords(t *testing.T, records []*config.Record) []*tree.Node[*config.Record] {
	t.Helper()
	roots, err := tree.BuildForest(records, config.RecordID, config.RecordParentID)
	require.NoError(t, err)
	return roots
}
