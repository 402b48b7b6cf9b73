package tablr

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// borderChars names the glyph for each structural role of a table border.
// Output is plain ASCII, so most roles share a glyph, but keeping the roles
// separate keeps the border rows honest about their structure.
type borderChars struct {
	topLeft     string
	topRight    string
	bottomLeft  string
	bottomRight string
	horizontal  string
	vertical    string
	topTee      string
	bottomTee   string
	leftTee     string
	rightTee    string
	cross       string
}

var asciiBorders = borderChars{
	topLeft:     "+",
	topRight:    "+",
	bottomLeft:  "+",
	bottomRight: "+",
	horizontal:  "-",
	vertical:    "|",
	topTee:      "+",
	bottomTee:   "+",
	leftTee:     "+",
	rightTee:    "+",
	cross:       "+",
}

// renderBlock renders one bordered table for the block's columns: top
// border, header row with centered names, separator, one row per record in
// input order, bottom border. Every line ends with a newline and carries no
// trailing spaces beyond the closing border.
func renderBlock(block []*column, records []Record, padding int) string {
	var sb strings.Builder
	bc := asciiBorders
	writeBorder(&sb, block, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	writeHeaderRow(&sb, block, padding, bc.vertical)
	writeBorder(&sb, block, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
	for _, rec := range records {
		writeDataRow(&sb, block, rec, padding, bc.vertical)
	}
	writeBorder(&sb, block, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
	return sb.String()
}

func writeBorder(sb *strings.Builder, block []*column, left, fill, mid, right string) {
	sb.WriteString(left)
	for i, c := range block {
		sb.WriteString(strings.Repeat(fill, c.width))
		if i < len(block)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
}

func writeHeaderRow(sb *strings.Builder, block []*column, padding int, vertical string) {
	margin := strings.Repeat(" ", padding)
	sb.WriteString(vertical)
	for i, c := range block {
		sb.WriteString(margin)
		sb.WriteString(alignCell(c.name, c.maxContent, alignCenter))
		sb.WriteString(margin)
		if i < len(block)-1 {
			sb.WriteString(vertical)
		}
	}
	sb.WriteString(vertical)
	sb.WriteString("\n")
}

func writeDataRow(sb *strings.Builder, block []*column, rec Record, padding int, vertical string) {
	margin := strings.Repeat(" ", padding)
	sb.WriteString(vertical)
	for i, c := range block {
		var cell string
		if v, ok := rec.Value(c.name); ok {
			cell = displayString(v)
		}
		sb.WriteString(margin)
		sb.WriteString(alignCell(cell, c.maxContent, c.align))
		sb.WriteString(margin)
		if i < len(block)-1 {
			sb.WriteString(vertical)
		}
	}
	sb.WriteString(vertical)
	sb.WriteString("\n")
}

// alignCell pads s with spaces to the given display width. Centered text
// with an odd amount of padding gives the extra space to the right.
func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", pad) + s
	case alignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
