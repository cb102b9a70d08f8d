package buffer

// Pos points into the document by (row, col) in runes.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open selection in rune offsets: [Start, End).
// Start <= End once normalized.
type Range struct {
	Start int
	End   int
}

func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Len returns the rune length of the normalized range.
func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampOffset clamps off into [0, n].
func ClampOffset(off, n int) int {
	return clampInt(off, 0, n)
}

// ClampRange clamps both ends of r into [0, n] without normalizing it.
func ClampRange(r Range, n int) Range {
	return Range{
		Start: ClampOffset(r.Start, n),
		End:   ClampOffset(r.End, n),
	}
}
