package tablr

import (
	"io"
	"iter"
)

// WriteIter renders records from an iterator. Layout needs every value
// before the first line can be drawn (column widths and numeric detection
// are computed over the whole set), so the sequence is drained into memory
// and rendered with [Write].
func WriteIter(w io.Writer, seq iter.Seq[Record], opts ...Option) error {
	var records []Record
	seq(func(rec Record) bool {
		records = append(records, rec)
		return true
	})
	return Write(w, records, opts...)
}

// WriteChan renders records from a channel. It is a thin wrapper around
// [WriteIter].
func WriteChan(w io.Writer, ch <-chan Record, opts ...Option) error {
	return WriteIter(w, chanToIter(ch), opts...)
}

func chanToIter(ch <-chan Record) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for rec := range ch {
			if !yield(rec) {
				return
			}
		}
	}
}
