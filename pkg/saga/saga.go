// Package saga runs the fixed write script used for every aggregate
// (parent row + child rows) against a store with no multi-table
// transaction surface. The script is a small state machine:
//
//	Start → ParentWritten → ChildrenWritten
//	                      ↘ RolledBack        (create path only)
//
// On the create path a child-write failure triggers a compensating
// delete of the freshly written parent. On the edit path the old
// children have already been deleted by the time the new set is
// written; a failure there propagates without restoring them.
package saga

import "fmt"

type State int

const (
	Start State = iota
	ParentWritten
	ChildrenWritten
	RolledBack
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case ParentWritten:
		return "parent_written"
	case ChildrenWritten:
		return "children_written"
	case RolledBack:
		return "rolled_back"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// AggregateWrite holds the steps of one parent+children write. Precheck,
// DeleteChildren and DeleteParent are optional; the rest are required.
type AggregateWrite struct {
	// Precheck runs before anything is written, e.g. a uniqueness probe.
	Precheck func() error

	// WriteParent inserts or updates the parent row, derived fields included.
	WriteParent func() error

	// DeleteChildren removes the existing child set (edit path, full replace).
	DeleteChildren func() error

	// WriteChildren inserts the submitted child set.
	WriteChildren func() error

	// DeleteParent compensates a failed child write on the create path.
	DeleteParent func() error

	// Editing switches between the create path (compensate parent on child
	// failure) and the edit path (delete old children first, no compensation).
	Editing bool

	// OnCompensationError is called when the compensating delete itself fails;
	// the original child-write error still propagates.
	OnCompensationError func(error)
}

// Run executes the script and returns the state it stopped in.
func (w *AggregateWrite) Run() (State, error) {
	if w.Precheck != nil {
		if err := w.Precheck(); err != nil {
			return Start, err
		}
	}

	if err := w.WriteParent(); err != nil {
		return Start, err
	}

	if w.Editing && w.DeleteChildren != nil {
		if err := w.DeleteChildren(); err != nil {
			return ParentWritten, err
		}
	}

	if err := w.WriteChildren(); err != nil {
		if !w.Editing && w.DeleteParent != nil {
			if derr := w.DeleteParent(); derr != nil {
				if w.OnCompensationError != nil {
					w.OnCompensationError(derr)
				}
				return ParentWritten, err
			}
			return RolledBack, err
		}
		// Edit path: old children are already gone and stay gone.
		return ParentWritten, err
	}

	return ChildrenWritten, nil
}
