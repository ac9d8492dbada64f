package jsoncompare

// Stats holds statistical metadata about a comparison
type Stats struct {
	LeftNodes  int `json:"leftNodes"`  // count of nodes in the left document
	RightNodes int `json:"rightNodes"` // count of nodes in the right document

	KindMismatches   int `json:"kindMismatches,omitempty"`   // paths holding different kinds of value
	ValueMismatches  int `json:"valueMismatches,omitempty"`  // scalar disagreements
	LengthMismatches int `json:"lengthMismatches,omitempty"` // arrays disagreeing on length
	MissingLeft      int `json:"missingLeft,omitempty"`      // properties only the right document has
	MissingRight     int `json:"missingRight,omitempty"`     // properties only the left document has

	Ignored int `json:"ignored,omitempty"` // subtrees skipped by ignore paths
}

// NodeChange returns a count of the shift between left & right documents
func (s Stats) NodeChange() int {
	return s.RightNodes - s.LeftNodes
}

// Differences returns the total number of recorded differences
func (s Stats) Differences() int {
	return s.KindMismatches + s.ValueMismatches + s.LengthMismatches +
		s.MissingLeft + s.MissingRight
}

// record tallies a result's differences by kind
func (s *Stats) record(res *Result) {
	for _, d := range res.Differences {
		switch d.Kind {
		case KindMismatch:
			s.KindMismatches++
		case ValueMismatch:
			s.ValueMismatches++
		case LengthMismatch:
			s.LengthMismatches++
		case MissingInLeft:
			s.MissingLeft++
		case MissingInRight:
			s.MissingRight++
		}
	}
}
