package domain

// Format is one of the three match types, each tracked with its own
// statistic tables.
type Format string

const (
	FormatTest Format = "Test"
	FormatODI  Format = "ODI"
	FormatT20  Format = "T20"
)

// MergeOrder returns the formats in merge priority order. Test figures win
// over ODI, ODI over T20, for every first-value-wins field.
func MergeOrder() []Format {
	return []Format{FormatTest, FormatODI, FormatT20}
}

// Category is a statistical discipline
type Category string

const (
	CategoryBatting  Category = "batting"
	CategoryBowling  Category = "bowling"
	CategoryFielding Category = "fielding"
)

// Categories returns all statistical disciplines
func Categories() []Category {
	return []Category{CategoryBatting, CategoryBowling, CategoryFielding}
}

// RawRow is a single source row: column name to raw cell value. Cells keep
// whatever encoding the source used ("1,234", "50.25*", "-", empty).
type RawRow map[string]string
