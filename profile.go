package tablr

import "github.com/mattn/go-runewidth"

// column accumulates layout facts for one table column. Profiling mutates
// maxContent and numeric; resolveLayout then freezes width and alignment,
// which stay fixed for the rest of the render.
type column struct {
	name       string
	maxContent int  // display width of the widest cell text, header included
	numeric    bool // no non-empty value has failed the numeric grammar
	width      int
	align      alignment
}

// profileRecords walks every field of every record in a single forward
// pass. Columns are created in first-seen order; later records can widen a
// column or demote it from numeric but never reorder it.
func profileRecords(records []Record) []*column {
	var cols []*column
	index := make(map[string]*column)
	for _, rec := range records {
		for _, key := range rec.Keys() {
			c, ok := index[key]
			if !ok {
				c = &column{
					name:       key,
					maxContent: runewidth.StringWidth(key),
					numeric:    true,
				}
				index[key] = c
				cols = append(cols, c)
			}
			v, _ := rec.Value(key)
			s := displayString(v)
			if w := runewidth.StringWidth(s); w > c.maxContent {
				c.maxContent = w
			}
			if c.numeric && s != "" && !isNumeric(s) {
				c.numeric = false
			}
		}
	}
	return cols
}

// resolveLayout derives each column's final width and alignment: content
// width plus padding on both sides, right-aligned when every non-empty
// value was numeric. A column with no non-empty values counts as numeric.
func resolveLayout(cols []*column, padding int) {
	for _, c := range cols {
		c.width = c.maxContent + 2*padding
		if c.numeric {
			c.align = alignRight
		} else {
			c.align = alignLeft
		}
	}
}

// isNumeric reports whether s matches the cell number grammar: optional
// sign, digits, optional fraction, optional exponent. The grammar is
// locale-independent and narrower than strconv.ParseFloat, which also
// admits "Inf", "NaN", hex floats, and underscore separators.
func isNumeric(s string) bool {
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := func() bool {
		start := i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return i > start
	}
	if !digits() {
		return false
	}
	if i < n && s[i] == '.' {
		i++
		if !digits() {
			return false
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if !digits() {
			return false
		}
	}
	return i == n
}
