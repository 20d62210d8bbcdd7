package domain

// FormatCells holds one raw row per format for a single category.
// A nil cell means the format contributed no data for this player.
type FormatCells struct {
	Test RawRow
	ODI  RawRow
	T20  RawRow
}

// Get returns the row for a format, or nil when absent
func (c *FormatCells) Get(format Format) RawRow {
	switch format {
	case FormatTest:
		return c.Test
	case FormatODI:
		return c.ODI
	case FormatT20:
		return c.T20
	}
	return nil
}

// Set stores the row for a format. A second row for the same format
// replaces the first, so within one source the last row wins.
func (c *FormatCells) Set(format Format, row RawRow) {
	switch format {
	case FormatTest:
		c.Test = row
	case FormatODI:
		c.ODI = row
	case FormatT20:
		c.T20 = row
	}
}

// PlayerAccumulator is the per-player intermediate state: one cell per
// (category, format) pair, keyed by the raw display name which may still
// embed a nationality annotation. All cells exist from construction; there
// is no implicit creation on access.
type PlayerAccumulator struct {
	RawName  string
	Batting  FormatCells
	Bowling  FormatCells
	Fielding FormatCells
}

// NewPlayerAccumulator creates a fully initialized accumulator for a player
func NewPlayerAccumulator(rawName string) *PlayerAccumulator {
	return &PlayerAccumulator{RawName: rawName}
}

// Cells returns the category's format cells, or nil for an unknown category
func (a *PlayerAccumulator) Cells(category Category) *FormatCells {
	switch category {
	case CategoryBatting:
		return &a.Batting
	case CategoryBowling:
		return &a.Bowling
	case CategoryFielding:
		return &a.Fielding
	}
	return nil
}
