package jsoncompare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReport(t *testing.T) {
	res := &Result{Differences: []Difference{
		{Path: "names[1].name", Kind: ValueMismatch, Left: `"brian"`, Right: `"rebecca"`},
		{Path: "salary", Kind: MissingInRight, Left: "null"},
		{Path: "Name", Kind: MissingInLeft, Right: `"gary"`},
		{Path: "$", Kind: LengthMismatch, Left: "3", Right: "4"},
		{Path: "cool", Kind: KindMismatch, Left: "null", Right: "false"},
	}}

	got, err := FormatReportString(res, false)
	require.NoError(t, err)

	expect := `Path 'names[1].name' value mismatch: "brian" != "rebecca"
Path 'salary' missing in right document
Path 'Name' missing in left document
Path '$' array length mismatch: 3 != 4
Path 'cool' kind mismatch: null != false
`
	assert.Equal(t, expect, got)
}

func TestFormatReportEmpty(t *testing.T) {
	got, err := FormatReportString(&Result{}, false)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFormatStats(t *testing.T) {
	cases := []struct {
		description string
		input       *Stats
		expect      string
	}{
		{"all plural",
			&Stats{LeftNodes: 2, RightNodes: 6, ValueMismatches: 2, MissingRight: 2},
			"+4 nodes. 2 value mismatches. 2 missing in right.\n",
		},
		{"all singular",
			&Stats{LeftNodes: 2, RightNodes: 1, KindMismatches: 1, MissingLeft: 1, Ignored: 1},
			"-1 node. 1 kind mismatch. 1 missing in left. 1 ignored subtree.\n",
		},
		{"no differences",
			&Stats{LeftNodes: 3, RightNodes: 3},
			"0 nodes.\n",
		},
	}

	for i, c := range cases {
		got := FormatStatsString(c.input, false)
		if got != c.expect {
			t.Errorf("%d %s\nwant:\n%s\ngot:\n%s", i, c.description, c.expect, got)
		}
	}
}

func TestFormatStatsNull(t *testing.T) {
	got := FormatStatsString(nil, false)
	expect := ``
	if got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}
