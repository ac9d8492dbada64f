package jsoncompare

import (
	"fmt"
	"strings"
)

// DifferenceKind classifies a single structural mismatch between two
// documents
type DifferenceKind string

const (
	// KindMismatch means the documents hold different kinds of value at a
	// path, eg an object on one side & an array on the other. nothing
	// beneath the path is compared
	KindMismatch = DifferenceKind("kind mismatch")
	// ValueMismatch is a disagreement between two scalars of the same kind
	ValueMismatch = DifferenceKind("value mismatch")
	// LengthMismatch means two arrays disagree on length. elements within
	// the shared index range are still compared individually
	LengthMismatch = DifferenceKind("length mismatch")
	// MissingInLeft marks a property the right document has & the left
	// document lacks
	MissingInLeft = DifferenceKind("missing in left")
	// MissingInRight marks a property the left document has & the right
	// document lacks
	MissingInRight = DifferenceKind("missing in right")
)

// Difference records one mismatch: where it occurred, what sort of
// mismatch it is, and display renderings of the conflicting values
type Difference struct {
	// Path locates the mismatch, eg "names[1].name". the document root
	// renders as "$"
	Path string `json:"path"`
	// Kind classifies the mismatch
	Kind DifferenceKind `json:"kind"`
	// Left & Right hold the conflicting representations: canonical scalars
	// with strings quoted, compact JSON for compounds, and the two lengths
	// for a length mismatch. missing-property differences populate only the
	// side the property exists on
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
}

// String renders the difference as a single report line of the form
// "Path '<path>' <kind-specific message>"
func (d Difference) String() string {
	switch d.Kind {
	case KindMismatch:
		return fmt.Sprintf("Path '%s' kind mismatch: %s != %s", d.Path, d.Left, d.Right)
	case ValueMismatch:
		return fmt.Sprintf("Path '%s' value mismatch: %s != %s", d.Path, d.Left, d.Right)
	case LengthMismatch:
		return fmt.Sprintf("Path '%s' array length mismatch: %s != %s", d.Path, d.Left, d.Right)
	case MissingInLeft:
		return fmt.Sprintf("Path '%s' missing in left document", d.Path)
	case MissingInRight:
		return fmt.Sprintf("Path '%s' missing in right document", d.Path)
	}
	return fmt.Sprintf("Path '%s' %s", d.Path, d.Kind)
}

// Result is the outcome of one comparison: the ordered sequence of
// differences found. ordering is deterministic: depth-first in the left
// document's traversal order, with right-exclusive object properties
// reported after all other differences at their object's level. a Result
// is immutable once returned
type Result struct {
	Differences []Difference `json:"differences"`
}

// Equal reports whether the comparison found no differences
func (r *Result) Equal() bool { return len(r.Differences) == 0 }

// String renders one line per difference, suitable for a test failure
// message
func (r *Result) String() string {
	lines := make([]string, len(r.Differences))
	for i, d := range r.Differences {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}
