package cardex

// KeywordMatch controls how a role keyword is compared to a header label.
type KeywordMatch int

// KeywordMatch constants.
const (
	MatchContains KeywordMatch = iota
	MatchExact
	MatchPrefix
)

// NumericMode controls how a numeric cell is validated.
type NumericMode int

// NumericMode constants.
const (
	NumericNone NumericMode = iota

	// NumericExact requires the whole cell to be an integer.
	NumericExact

	// NumericLeading takes the first run of digits in the cell.
	NumericLeading
)

// Role describes one semantic column of a data table.
type Role struct {
	// Field is the output field the column populates.
	Field string

	// Keywords identify the column in a header row.
	Keywords []string
	Match    KeywordMatch

	// Optional roles are not needed for a header row to be understood.
	Optional bool

	// Required cells must be non-empty or the row is dropped.
	Required bool

	Numeric NumericMode

	// MultiLine cells keep their logical lines, joined with LineSeparator.
	MultiLine bool

	// Format post-processes the normalized cell text.
	Format func(string) string
}

// LineSeparator joins the logical lines of a multi-line cell.
const LineSeparator = " • "

// Shape is a positional table layout used when headers are missing or
// unreliable. Columns lists the field at each position; an empty string
// ignores that column.
type Shape struct {
	Columns []string

	// AllowExtra accepts rows with more cells than Columns.
	AllowExtra bool
}

// Fits reports whether a row with n cells matches the shape.
func (s Shape) Fits(n int) bool {
	if s.AllowExtra {
		return n >= len(s.Columns)
	}
	return n == len(s.Columns)
}

// Layout describes the tables that carry one category of rows.
type Layout struct {
	// Roles are tried against header rows and validate extracted cells.
	// A layout without keyword roles skips header classification.
	Roles []Role

	// Shapes are tried in order when header classification fails.
	Shapes []Shape

	// Defaults fill fields that no column provides, e.g. quantity "1".
	Defaults map[string]string
}

// Role returns the role for field, if any.
func (l *Layout) Role(field string) (Role, bool) {
	for _, r := range l.Roles {
		if r.Field == field {
			return r, true
		}
	}
	return Role{}, false
}

// HasHeaderRoles reports whether the layout can be matched by header keywords.
func (l *Layout) HasHeaderRoles() bool {
	for _, r := range l.Roles {
		if len(r.Keywords) > 0 && !r.Optional {
			return true
		}
	}
	return false
}

// ClassificationMode reports how a table was understood.
type ClassificationMode int

// ClassificationMode constants.
const (
	ModeNone ClassificationMode = iota
	ModeHeader
	ModeShape
)

// Classification is the result of classifying a single table.
type Classification struct {
	Understood bool
	Mode       ClassificationMode

	// Columns maps output fields to cell indexes.
	Columns map[string]int

	// Shape is the accepted shape in ModeShape.
	Shape Shape
}
