package tablr

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrUnsupportedFormat indicates an unknown input format name.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrUnsupportedInput indicates input whose shape cannot be decoded
	// into records, such as a top-level JSON scalar.
	ErrUnsupportedInput = errors.New("unsupported input")
)

// DefaultWidth is the output width assumed when no width option is given.
const DefaultWidth = 80

// defaultPadding is the space on each side of cell content inside a column.
const defaultPadding = 1

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// Option configures a single render.
type Option func(*options)

type options struct {
	width   int
	padding int
	repeats []string
}

func newOptions(opts []Option) options {
	o := options{width: DefaultWidth, padding: defaultPadding}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWidth sets the available output width in character columns. Values
// below one are ignored.
func WithWidth(width int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
	}
}

// WithRepeatColumns names the columns repeated at the start of every block
// after the first, in the given order. Names matching no discovered column
// are dropped; if none remain, the first discovered column repeats.
func WithRepeatColumns(names ...string) Option {
	return func(o *options) {
		o.repeats = names
	}
}

// WithPadding sets the number of spaces between cell content and the column
// border on each side. Negative values are ignored; the default is one.
func WithPadding(padding int) Option {
	return func(o *options) {
		if padding >= 0 {
			o.padding = padding
		}
	}
}

// Write renders records as bordered ASCII tables sized to the available
// width and writes the result to w.
//
// Columns appear in the order their fields were first seen across the
// records. Each column is as wide as its widest cell text (header
// included) plus padding; a column whose every non-empty value looks like
// a number is right-aligned, all others are left-aligned. When the full
// column set is wider than the output, the columns are split into several
// tables separated by a blank line, each after the first led by the repeat
// columns so rows stay identifiable.
//
// Zero records, or records with no fields at all, write nothing.
func Write(w io.Writer, records []Record, opts ...Option) error {
	if len(records) == 0 {
		return nil
	}
	o := newOptions(opts)
	cols := profileRecords(records)
	if len(cols) == 0 {
		return nil
	}
	resolveLayout(cols, o.padding)
	repeats := resolveRepeats(cols, o.repeats)
	blocks := planBlocks(cols, repeats, o.width)

	var sb strings.Builder
	for i, block := range blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(renderBlock(block, records, o.padding))
	}
	out := strings.TrimRight(sb.String(), " \t\n")
	_, err := io.WriteString(w, out+"\n")
	return err
}

// Marshal renders records like [Write] and returns the bytes.
func Marshal(records []Record, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, records, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// resolveRepeats maps the configured repeat names onto discovered columns,
// preserving the configured order and dropping duplicates and unknown
// names. An empty result falls back to the first discovered column.
func resolveRepeats(cols []*column, names []string) []*column {
	index := make(map[string]*column, len(cols))
	for _, c := range cols {
		index[c.name] = c
	}
	var repeats []*column
	for _, name := range names {
		c, ok := index[name]
		if !ok {
			continue
		}
		if !blockHas(repeats, c) {
			repeats = append(repeats, c)
		}
	}
	if len(repeats) == 0 {
		repeats = cols[:1]
	}
	return repeats
}
