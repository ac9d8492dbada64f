package jsoncompare

import (
	"fmt"
	"strconv"
)

// Side identifies which input document of a comparison an error refers to
type Side string

const (
	// SideLeft is the first document passed to Compare
	SideLeft = Side("left")
	// SideRight is the second document passed to Compare
	SideRight = Side("right")
)

// ParseError reports that one of the input documents is not valid JSON.
// parse failures abort the whole comparison: no partial result is produced
type ParseError struct {
	Side Side
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s document: %s", e.Side, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Config are any possible configuration parameters for a Comparer
type Config struct {
	// IgnorePaths lists dot-separated property-name patterns naming
	// subtrees to exclude from comparison. indices are elided when
	// matching, so "names.name" covers every element of the "names" array.
	// a pattern that never matches anything is a no-op
	IgnorePaths []string
	// Provide a non-nil stats pointer & each comparison will populate it
	// with data from the comparison process. a comparer carrying stats
	// should not be shared across goroutines
	Stats *Stats
}

// Option is a function that adjusts a Config, zero or more Options can be
// passed to New
type Option func(cfg *Config)

// WithIgnorePaths adds exclusion patterns to the comparer
func WithIgnorePaths(paths ...string) Option {
	return func(cfg *Config) {
		cfg.IgnorePaths = append(cfg.IgnorePaths, paths...)
	}
}

// WithStats will populate the passed-in stats pointer on each comparison
func WithStats(st *Stats) Option {
	return func(cfg *Config) {
		cfg.Stats = st
	}
}

// Comparer computes deterministic structural diffs between pairs of JSON
// documents, tolerant of key ordering & numeric literal formatting. the
// zero configuration compares everything; construct with options to
// exclude subtrees or gather stats
type Comparer struct {
	cfg Config
}

// New creates a Comparer with the given options
func New(opts ...Option) *Comparer {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Comparer{cfg: cfg}
}

// Compare is a convenience for comparing two documents with optional
// exclusion patterns using a fresh Comparer
func Compare(left, right []byte, ignorePaths ...string) (*Result, error) {
	return New(WithIgnorePaths(ignorePaths...)).Compare(left, right)
}

// Equal is a convenience reporting whether two documents are structurally
// equal, with no exclusions applied
func Equal(left, right []byte) (bool, error) {
	return New().Equal(left, right)
}

// Hash is a convenience computing the order-independent structural hash of
// a document
func Hash(data []byte) (uint64, error) {
	return New().Hash(data)
}

// Compare parses both documents & walks them together, returning the
// ordered differences. it is a pure function of its inputs: neither
// document is mutated & no state is carried between calls. malformed JSON
// fails the whole call with a *ParseError naming the offending side
func (c *Comparer) Compare(left, right []byte) (*Result, error) {
	ignore, err := parseIgnorePaths(c.cfg.IgnorePaths)
	if err != nil {
		return nil, err
	}

	lv, err := ParseValue(left)
	if err != nil {
		return nil, &ParseError{Side: SideLeft, Err: err}
	}
	rv, err := ParseValue(right)
	if err != nil {
		return nil, &ParseError{Side: SideRight, Err: err}
	}

	return c.compare(lv, rv, ignore), nil
}

// CompareValues diffs two already-parsed documents, for callers that hold
// Value trees rather than JSON text
func (c *Comparer) CompareValues(left, right *Value) (*Result, error) {
	ignore, err := parseIgnorePaths(c.cfg.IgnorePaths)
	if err != nil {
		return nil, err
	}
	return c.compare(left, right, ignore), nil
}

// Equal reports whether the two documents compare with zero differences
// under this comparer's configuration
func (c *Comparer) Equal(left, right []byte) (bool, error) {
	res, err := c.Compare(left, right)
	if err != nil {
		return false, err
	}
	return res.Equal(), nil
}

func (c *Comparer) compare(left, right *Value, ignore []ignorePattern) *Result {
	run := &comparison{ignore: ignore, stats: c.cfg.Stats}
	if run.stats != nil {
		*run.stats = Stats{
			LeftNodes:  left.nodeCount(),
			RightNodes: right.nodeCount(),
		}
	}

	run.compareAt(nil, nil, left, right)

	res := &Result{Differences: run.diffs}
	if run.stats != nil {
		run.stats.record(res)
	}
	return res
}

// comparison holds the traversal state for a single invocation. each call
// allocates its own, so concurrent comparisons never share state
type comparison struct {
	ignore []ignorePattern
	stats  *Stats
	diffs  []Difference
}

func (c *comparison) emit(path []Addr, kind DifferenceKind, left, right string) {
	c.diffs = append(c.diffs, Difference{
		Path:  pathString(path),
		Kind:  kind,
		Left:  left,
		Right: right,
	})
}

// ignored reports whether the canonical (index-stripped) name sequence is
// excluded. an excluded subtree is skipped entirely: no differences are
// emitted for it or any of its descendants
func (c *comparison) ignored(canonical []string) bool {
	for _, pattern := range c.ignore {
		if pattern.matches(canonical) {
			if c.stats != nil {
				c.stats.Ignored++
			}
			return true
		}
	}
	return false
}

// compareAt dispatches on the kind pairing at a single path. path carries
// the full segment chain for reporting, canonical carries property names
// only for exclusion matching
func (c *comparison) compareAt(path []Addr, canonical []string, left, right *Value) {
	if left.kind != right.kind {
		c.emit(path, KindMismatch, left.display(), right.display())
		return
	}

	switch left.kind {
	case KindObject:
		c.compareObjects(path, canonical, left, right)
	case KindArray:
		c.compareArrays(path, canonical, left, right)
	case KindNumber:
		// numeric value equality at decimal precision, never literal text
		if !left.num.Equal(right.num) {
			c.emit(path, ValueMismatch, left.display(), right.display())
		}
	case KindString:
		if left.str != right.str {
			c.emit(path, ValueMismatch, left.display(), right.display())
		}
	case KindBool:
		if left.b != right.b {
			c.emit(path, ValueMismatch, left.display(), right.display())
		}
	}
	// two nulls are equal, nothing to emit
}

func (c *comparison) compareObjects(path []Addr, canonical []string, left, right *Value) {
	for _, name := range left.keys {
		childCanonical := append(canonical, name)
		if c.ignored(childCanonical) {
			continue
		}
		childPath := append(path, StringAddr(name))
		rv, ok := right.obj[name]
		if !ok {
			c.emit(childPath, MissingInRight, left.obj[name].display(), "")
			continue
		}
		c.compareAt(childPath, childCanonical, left.obj[name], rv)
	}

	// right-exclusive properties trail all other differences at this level
	for _, name := range right.keys {
		if _, shared := left.obj[name]; shared {
			continue
		}
		childCanonical := append(canonical, name)
		if c.ignored(childCanonical) {
			continue
		}
		c.emit(append(path, StringAddr(name)), MissingInLeft, "", right.obj[name].display())
	}
}

func (c *comparison) compareArrays(path []Addr, canonical []string, left, right *Value) {
	shared := len(left.arr)
	if len(left.arr) != len(right.arr) {
		c.emit(path, LengthMismatch,
			strconv.Itoa(len(left.arr)), strconv.Itoa(len(right.arr)))
		if len(right.arr) < shared {
			shared = len(right.arr)
		}
	}

	// element differences within the shared index range are still
	// reported; the length mismatch subsumes the elements beyond it.
	// canonical stays as-is: indices are elided from exclusion matching
	for i := 0; i < shared; i++ {
		c.compareAt(append(path, IndexAddr(i)), canonical, left.arr[i], right.arr[i])
	}
}
