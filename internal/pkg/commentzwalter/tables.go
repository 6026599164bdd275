package commentzwalter

// TableRow is one line of the diagnostic dump of the precomputed tables.
type TableRow struct {
	State    int  `json:"state"`
	Depth    int  `json:"depth"`
	Parent   int  `json:"parent"`
	Failure  int  `json:"failure"`
	Terminal bool `json:"terminal"`
	S1       int  `json:"s1"`
	S2       int  `json:"s2"`
}

// Tables returns one row per automaton state, in identifier order.
func (cw *CommentzWalter) Tables() []TableRow {
	n := cw.StateCount()
	rows := make([]TableRow, n)
	for s := 0; s < n; s++ {
		parent, _ := cw.automaton.Parent(s)
		rows[s] = TableRow{
			State:    s,
			Depth:    cw.automaton.Depth(s),
			Parent:   parent,
			Failure:  cw.failure[s],
			Terminal: cw.automaton.IsTerminal(s),
			S1:       cw.shifts.S1[s],
			S2:       cw.shifts.S2[s],
		}
	}
	return rows
}

// BadCharEntry is one populated entry of the bad-character table.
type BadCharEntry struct {
	Symbol byte `json:"symbol"`
	Shift  int  `json:"shift"`
}

// BadCharEntries returns the symbols that occur in some pattern with their
// shifts, in ascending symbol order. Every other symbol shifts by pmin.
func (cw *CommentzWalter) BadCharEntries() []BadCharEntry {
	var entries []BadCharEntry
	for sym := 0; sym < 256; sym++ {
		if cw.rt.Has(byte(sym)) {
			entries = append(entries, BadCharEntry{Symbol: byte(sym), Shift: cw.rt.Lookup(byte(sym))})
		}
	}
	return entries
}
