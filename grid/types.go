package grid

// DefaultDelimiter separates columns when Options.Delimiter is zero.
const DefaultDelimiter = ','

// DefaultRowBreak separates rows when Options.RowBreak is empty.
const DefaultRowBreak = "\n"

// Options configures how text is split into rows and columns.
type Options struct {
	Delimiter rune   // default: ','
	RowBreak  string // default: "\n"
}

func (o Options) normalized() Options {
	if o.Delimiter == 0 {
		o.Delimiter = DefaultDelimiter
	}
	if o.RowBreak == "" {
		o.RowBreak = DefaultRowBreak
	}
	return o
}

// Normalized returns o with defaults applied.
func (o Options) Normalized() Options { return o.normalized() }

// ColumnSpan is one delimiter-separated field of a row.
//
// Start is relative to the row start. Length excludes the delimiter or row
// break that terminates the field.
type ColumnSpan struct {
	Index  int
	Start  int
	Length int
}

// End returns the row-relative offset just past the field.
func (c ColumnSpan) End() int { return c.Start + c.Length }

// RowSpan is one row of the grid: [Start, End) in absolute offsets, row break
// excluded.
type RowSpan struct {
	Index   int
	Start   int
	End     int
	Columns []ColumnSpan
}

// Len returns the rune length of the row without its row break.
func (r RowSpan) Len() int { return r.End - r.Start }

// ColumnCount returns the number of fields on this row. A zero-length row has
// no fields.
func (r RowSpan) ColumnCount() int { return len(r.Columns) }

// Location is the grid coordinate resolved for an absolute offset.
type Location struct {
	Offset       int // absolute offset, clamped into the text
	Row          int
	RowStart     int // absolute offset of the row start
	OffsetInRow  int
	Column       int
	ColumnStart  int // row-relative start of the column
	ColumnLength int
}

// AtColumnStart reports whether the offset sits at the start of its column.
func (l Location) AtColumnStart() bool { return l.OffsetInRow == l.ColumnStart }
