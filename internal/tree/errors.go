package tree

import (
	"errors"
	"fmt"
	"strings"
)

// Error categories. Every specific error below wraps exactly one of them.
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrStructuralViolation   = errors.New("structural violation")
	ErrConstructionViolation = errors.New("construction violation")
)

// Invalid arguments.
var (
	ErrNilNode         = fmt.Errorf("%w: node is nil", ErrInvalidArgument)
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)
)

// Structural violations raised by node mutations.
var (
	ErrCircularReference     = fmt.Errorf("%w: circular reference", ErrStructuralViolation)
	ErrParentAlreadyAssigned = fmt.Errorf("%w: parent already assigned", ErrStructuralViolation)
	ErrCannotDisconnectRoot  = fmt.Errorf("%w: cannot disconnect a root node", ErrStructuralViolation)
	ErrNoParent              = fmt.Errorf("%w: node has no parent", ErrStructuralViolation)
)

// Construction violations raised by BuildForest.
var (
	ErrSelfParent     = fmt.Errorf("%w: record is its own parent", ErrConstructionViolation)
	ErrDuplicateID    = fmt.Errorf("%w: duplicate id", ErrConstructionViolation)
	ErrDanglingParent = fmt.Errorf("%w: parent id not found", ErrConstructionViolation)
	ErrCycle          = fmt.Errorf("%w: parent ids form a cycle", ErrConstructionViolation)
)

// SelfParentError reports a record whose parent id equals its own id.
// Index is the record's position in the input.
type SelfParentError[K comparable] struct {
	ID    K
	Index int
}

func (e *SelfParentError[K]) Error() string {
	return fmt.Sprintf("record %v declares itself as its parent", e.ID)
}

func (e *SelfParentError[K]) Unwrap() error { return ErrSelfParent }

// DuplicateIDError reports an id shared by Count records. Index is the
// position of the second record using it.
type DuplicateIDError[K comparable] struct {
	ID    K
	Count int
	Index int
}

func (e *DuplicateIDError[K]) Error() string {
	return fmt.Sprintf("id %v is used by %d records", e.ID, e.Count)
}

func (e *DuplicateIDError[K]) Unwrap() error { return ErrDuplicateID }

// DanglingParentError reports a parent id that matches no record in the
// input. Index is the position of the record holding ParentID.
type DanglingParentError[K comparable] struct {
	ID       K
	ParentID K
	Index    int
}

func (e *DanglingParentError[K]) Error() string {
	return fmt.Sprintf("record %v references missing parent %v", e.ID, e.ParentID)
}

func (e *DanglingParentError[K]) Unwrap() error { return ErrDanglingParent }

// CycleError reports records whose parent chain loops back on itself.
// IDs lists the cycle members in parent order and Indexes their input
// positions.
type CycleError[K comparable] struct {
	IDs     []K
	Indexes []int
}

func (e *CycleError[K]) Error() string {
	parts := make([]string, 0, len(e.IDs)+1)
	for _, id := range e.IDs {
		parts = append(parts, fmt.Sprint(id))
	}
	if len(e.IDs) > 0 {
		parts = append(parts, fmt.Sprint(e.IDs[0]))
	}
	return fmt.Sprintf("cycle detected in parent ids: %s", strings.Join(parts, " -> "))
}

func (e *CycleError[K]) Unwrap() error { return ErrCycle }
