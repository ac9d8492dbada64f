// Package jsoncompare is a structural comparator for JSON documents,
// producing a deterministic, path-annotated list of differences for use
// as a test oracle
//
// Comparing JSON for tests carries subtleties that byte or string
// comparison gets wrong. jsoncompare parses both documents & walks them
// together, so comparison is insensitive to object key ordering, to
// whitespace, and to numeric literal formatting: {"a":1,"b":2} equals
// {"b":2,"a":1}, and 40 equals 40.0. Numbers are held at decimal
// precision, never compared through floating-point epsilon tolerance
//
// Structural mismatches are data, not errors. Comparing two well-formed
// documents always succeeds & yields zero or more Difference records, each
// locating a mismatch by path, eg "names[1].name". Only malformed input
// fails a comparison, with a ParseError naming the offending side
//
// Subtrees can be excluded from comparison with dotted ignore paths.
// Array indices are elided from exclusion matching, so the pattern
// "names.name" suppresses differences at names[0].name, names[1].name,
// and so on
//
// The package also computes an order-independent structural hash: two
// documents that compare equal hash to the same value, which makes the
// hash usable for bucketing JSON-equivalent payloads, eg keying canned
// responses by normalized request body
package jsoncompare
