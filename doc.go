// Package tablr renders records as bordered ASCII tables sized to an
// available output width.
//
// A record is an ordered set of named field values; anything implementing
// [Record] can be rendered, and [Pairs] is the ready-made implementation
// the decoders produce. The central entry points are [Write] and [Marshal],
// which take the full record set and variadic [Option] values.
//
// # Layout
//
// Rendering is a two-pass process. The first pass profiles every value:
// columns are discovered in the order their fields are first seen, each
// column's width becomes the width of its widest cell text (header
// included) plus padding, and a column whose every non-empty value matches
// a fixed numeric grammar is right-aligned. The second pass draws the
// table from those frozen widths. Because profiling needs every value,
// the package buffers its input; it does not stream.
//
// # Block wrapping
//
// When the combined column widths exceed the available output width, the
// columns are split left to right into blocks, each rendered as its own
// table with a blank line in between:
//
//	+------+------+
//	| name | role |
//	+------+------+
//
//	+------+----------+
//	| name | location |
//	+------+----------+
//
// Blocks after the first are led by the repeat columns (see
// [WithRepeatColumns]) so rows stay identifiable across tables; by default
// the first column repeats. A single column wider than the output still
// renders in full rather than being dropped or truncated.
//
// # Input decoding
//
// [Decode] and the per-format decoders turn JSON, JSONL, YAML, and CSV
// input into records. All of them preserve the field order of the source
// document, and they keep scalar values in their source spelling so that
// numeric detection sees exactly what the author wrote:
//
//	records, err := tablr.Decode(os.Stdin, tablr.JSONL)
//	if err != nil { ... }
//	tablr.Write(os.Stdout, records)
//
// Use [ParseFormat] to convert a CLI flag string into a [Format];
// [DecodeAuto] guesses the format from the input itself.
//
// # Options
//
//   - [WithWidth] — available output width (default [DefaultWidth])
//   - [WithRepeatColumns] — columns repeated on every block after the first
//   - [WithPadding] — spaces between cell text and column border
//
// # Streams
//
// [WriteIter] and [WriteChan] accept records from an iterator or a
// channel. They drain the source before rendering, since no line can be
// drawn until every value has been measured.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrUnsupportedInput] — input whose shape cannot become records
package tablr
