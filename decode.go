package tablr

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format represents an input format.
type Format string

const (
	Auto  Format = "auto"
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
	CSV   Format = "csv"
)

var formats = []Format{Auto, JSON, JSONL, YAML, CSV}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Decode reads records from r in the given format. Every decoder preserves
// the field order of the source document, so the rendered column order
// matches the input. Empty input yields no records and no error.
func Decode(r io.Reader, f Format) ([]Record, error) {
	switch f {
	case Auto:
		return DecodeAuto(r)
	case JSON:
		return DecodeJSON(r)
	case JSONL:
		return DecodeJSONL(r)
	case YAML:
		return DecodeYAML(r)
	case CSV:
		return DecodeCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// DecodeAuto reads all of r and guesses the format: a leading '[' means a
// JSON array, a leading '{' means a stream of JSON objects, anything else
// is tried as YAML and then as CSV. CSV detection requires at least two
// header fields, otherwise any plain text would pass for a one-column
// table.
func DecodeAuto(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '[':
		return DecodeJSON(bytes.NewReader(data))
	case '{':
		return DecodeJSONL(bytes.NewReader(data))
	}
	if records, err := DecodeYAML(bytes.NewReader(data)); err == nil {
		return records, nil
	}
	if records, err := decodeCSVTable(data); err == nil {
		return records, nil
	}
	return nil, fmt.Errorf("%w: cannot detect input format", ErrUnsupportedInput)
}

func decodeCSVTable(data []byte) ([]Record, error) {
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: single-column CSV is indistinguishable from plain text", ErrUnsupportedInput)
	}
	return DecodeCSV(bytes.NewReader(data))
}

// DecodeJSON reads a JSON document: either an array of objects or a single
// object. The decoder walks tokens instead of unmarshaling into maps so
// field order is kept, and numbers stay in their source spelling.
func DecodeJSON(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, fmt.Errorf("%w: top-level JSON value must be an object or an array of objects", ErrUnsupportedInput)
	}
	switch delim {
	case '[':
		var records []Record
		for dec.More() {
			rec, err := decodeJSONObject(dec)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return records, nil
	case '{':
		rec, err := decodeJSONFields(dec)
		if err != nil {
			return nil, err
		}
		return []Record{rec}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q at top level", ErrUnsupportedInput, delim.String())
	}
}

// DecodeJSONL reads a stream of JSON objects, one record each. Objects are
// separated by whitespace, which covers the usual one-per-line layout.
func DecodeJSONL(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var records []Record
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return nil, fmt.Errorf("%w: every JSONL value must be an object", ErrUnsupportedInput)
		}
		rec, err := decodeJSONFields(dec)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// decodeJSONObject consumes one object from dec, opening brace included.
func decodeJSONObject(dec *json.Decoder) (Pairs, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: array element is not an object", ErrUnsupportedInput)
	}
	return decodeJSONFields(dec)
}

// decodeJSONFields consumes the fields and closing brace of an object whose
// opening brace has already been read.
func decodeJSONFields(dec *json.Decoder) (Pairs, error) {
	var rec Pairs
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is not a string", ErrUnsupportedInput)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		rec = append(rec, KeyValue{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return rec, nil
}

// DecodeYAML reads one or more YAML documents, each a mapping or a sequence
// of mappings. Documents are decoded as yaml.Node trees because the node
// API is the only one that keeps mapping key order; scalar values keep
// their source spelling the same way.
func DecodeYAML(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	var records []Record
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		recs, err := yamlDocRecords(&doc)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
}

func yamlDocRecords(doc *yaml.Node) ([]Record, error) {
	node := doc
	for node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	node = yamlDeref(node)
	switch node.Kind {
	case yaml.MappingNode:
		return []Record{yamlMappingRecord(node)}, nil
	case yaml.SequenceNode:
		records := make([]Record, 0, len(node.Content))
		for _, item := range node.Content {
			item = yamlDeref(item)
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: YAML sequence item is not a mapping", ErrUnsupportedInput)
			}
			records = append(records, yamlMappingRecord(item))
		}
		return records, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			// Empty document, e.g. a trailing separator.
			return nil, nil
		}
		return nil, fmt.Errorf("%w: YAML document is a scalar, not a mapping", ErrUnsupportedInput)
	default:
		if node.Kind == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: YAML document is not a mapping or a sequence of mappings", ErrUnsupportedInput)
	}
}

func yamlMappingRecord(n *yaml.Node) Pairs {
	rec := make(Pairs, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		rec = append(rec, KeyValue{Key: key, Value: yamlValue(yamlDeref(n.Content[i+1]))})
	}
	return rec
}

// yamlValue extracts a field value. Scalars stay as their source text so a
// value like "1.50" renders exactly as written; nulls become nil; nested
// mappings and sequences decode to plain Go values for displayString to
// summarize.
func yamlValue(n *yaml.Node) any {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil
		}
		return n.Value
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return n.Value
		}
		return v
	}
}

func yamlDeref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// DecodeCSV reads comma-separated values with the first row as header. Rows
// shorter than the header fill the missing fields with empty strings; extra
// fields beyond the header are ignored. All values stay strings, so numeric
// columns are detected from their text like in every other format.
func DecodeCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Pairs, 0, len(header))
		for i, name := range header {
			var value string
			if i < len(row) {
				value = row[i]
			}
			rec = append(rec, KeyValue{Key: name, Value: value})
		}
		records = append(records, rec)
	}
	return records, nil
}
