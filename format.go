package jsoncompare

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	neutralColor      = color.New(color.FgWhite)
	mismatchColor     = color.New(color.FgBlue)
	missingLeftColor  = color.New(color.FgGreen)
	missingRightColor = color.New(color.FgRed)
)

// FormatReportString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatReportString(res *Result, colorize bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatReport(buf, res, colorize); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatReport writes a text report to w, one line per difference. if
// colorize is true it will render
// red for properties missing on the right
// green for properties missing on the left
// blue for kind, value & length mismatches
func FormatReport(w io.Writer, res *Result, colorize bool) error {
	for _, d := range res.Differences {
		line := d.String()
		if colorize {
			line = diffColor(d.Kind).Sprint(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func diffColor(kind DifferenceKind) *color.Color {
	switch kind {
	case MissingInRight:
		return missingRightColor
	case MissingInLeft:
		return missingLeftColor
	default:
		return mismatchColor
	}
}

// FormatStatsString prints a one-line summary of comparison stats,
// optionally with terminal colors
func FormatStatsString(st *Stats, colorize bool) string {
	if st == nil {
		return ""
	}

	buf := &bytes.Buffer{}

	change := st.NodeChange()
	sign := ""
	if change > 0 {
		sign = "+"
	}
	nodesWord := "nodes"
	if change == 1 || change == -1 {
		nodesWord = "node"
	}
	lead := fmt.Sprintf("%s%d %s.", sign, change, nodesWord)
	if colorize {
		lead = neutralColor.Sprint(lead)
	}
	buf.WriteString(lead)

	writeCount := func(n int, singular, plural string, c *color.Color) {
		if n == 0 {
			return
		}
		word := plural
		if n == 1 {
			word = singular
		}
		s := fmt.Sprintf(" %d %s.", n, word)
		if colorize {
			s = c.Sprint(s)
		}
		buf.WriteString(s)
	}

	writeCount(st.KindMismatches, "kind mismatch", "kind mismatches", mismatchColor)
	writeCount(st.ValueMismatches, "value mismatch", "value mismatches", mismatchColor)
	writeCount(st.LengthMismatches, "length mismatch", "length mismatches", mismatchColor)
	writeCount(st.MissingRight, "missing in right", "missing in right", missingRightColor)
	writeCount(st.MissingLeft, "missing in left", "missing in left", missingLeftColor)
	writeCount(st.Ignored, "ignored subtree", "ignored subtrees", neutralColor)

	buf.WriteRune('\n')

	return buf.String()
}
