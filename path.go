package jsoncompare

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"
)

// Addr is one step of a path into a document: a property name or an
// array index
type Addr interface {
	String() string
}

// StringAddr is an object property name
type StringAddr string

// String returns the property name
func (s StringAddr) String() string { return string(s) }

// IndexAddr is a position within an array
type IndexAddr int

// String renders the index in bracket notation
func (i IndexAddr) String() string { return "[" + strconv.Itoa(int(i)) + "]" }

// RootPath is the rendered path of the document root
const RootPath = "$"

// pathString renders a path in dotted/bracketed form, eg "names[1].name".
// the empty path is the document root
func pathString(path []Addr) string {
	if len(path) == 0 {
		return RootPath
	}
	b := &strings.Builder{}
	for i, addr := range path {
		if name, ok := addr.(StringAddr); ok {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(string(name))
			continue
		}
		b.WriteString(addr.String())
	}
	return b.String()
}

// ignorePattern is a parsed exclusion: a chain of property names with
// array indices elided
type ignorePattern []string

func parseIgnorePaths(paths []string) ([]ignorePattern, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	patterns := make([]ignorePattern, 0, len(paths))
	for _, p := range paths {
		pattern, err := parseIgnorePath(p)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}

// parseIgnorePath reads a dotted property-name pattern. a leading "$" and
// any bracketed indices are accepted & dropped: exclusion matching works on
// the index-stripped name chain, so "names[0].name" and "names.name" are
// the same pattern
func parseIgnorePath(path string) (ignorePattern, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("ignore path %q: %w", path, err)
	}

	var pattern ignorePattern
	for _, frag := range expr {
		switch f := frag.(type) {
		case jp.Root:
		case jp.Child:
			pattern = append(pattern, string(f))
		case jp.Nth:
		default:
			return nil, fmt.Errorf("ignore path %q: unsupported segment type %T", path, frag)
		}
	}
	if len(pattern) == 0 {
		return nil, fmt.Errorf("ignore path %q: no property names", path)
	}
	return pattern, nil
}

// matches reports whether the pattern names exactly the given canonical
// (index-stripped) property-name sequence
func (p ignorePattern) matches(canonical []string) bool {
	if len(p) != len(canonical) {
		return false
	}
	for i, name := range p {
		if canonical[i] != name {
			return false
		}
	}
	return true
}
