package settings

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrMalformed is wrapped by every Decode failure.
var ErrMalformed = errors.New("malformed settings record")

// blobText turns a stored value into JSON text: trailing NULs are dropped
// and invalid UTF-8 is replaced rather than rejected.
func blobText(blob []byte) []byte {
	blob = bytes.TrimRight(blob, "\x00")
	return []byte(strings.ToValidUTF8(string(blob), "\uFFFD"))
}

// DecodeBlob decodes a stored value (JSON text plus NUL terminator).
func DecodeBlob(blob []byte) (Record, error) {
	return Decode(blobText(blob))
}

// Decode parses a JSON object into a Record. Every stored field must be
// present exactly once with the right JSON type; unknown keys are ignored. Values
// outside a field's domain are kept as-is.
func Decode(text []byte) (Record, error) {
	if !gjson.ValidBytes(text) {
		return Record{}, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	doc := gjson.ParseBytes(text)
	if !doc.IsObject() {
		return Record{}, fmt.Errorf("%w: top level is not an object", ErrMalformed)
	}

	found := make(map[string]gjson.Result, len(schema))
	var dup string
	doc.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, seen := found[name]; seen && isColumn(name) {
			dup = name
			return false
		}
		found[name] = value
		return true
	})
	if dup != "" {
		return Record{}, fmt.Errorf("%w: duplicate field %s", ErrMalformed, dup)
	}

	var rec Record
	for _, col := range schema {
		v, ok := found[col.Name]
		if !ok {
			return Record{}, fmt.Errorf("%w: missing field %s", ErrMalformed, col.Name)
		}
		if err := col.decode(&rec, v); err != nil {
			return Record{}, fmt.Errorf("%w: field %s: %v", ErrMalformed, col.Name, err)
		}
	}
	return rec, nil
}

func isColumn(name string) bool {
	for _, col := range schema {
		if col.Name == name {
			return true
		}
	}
	return false
}

func (c column) decode(rec *Record, v gjson.Result) error {
	switch c.Kind {
	case KindInt:
		if v.Type != gjson.Number {
			return fmt.Errorf("expected integer, got %s", v.Type)
		}
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return fmt.Errorf("expected integer, got %s", v.Raw)
		}
		*c.access.ints(rec) = n
	case KindFloat:
		if v.Type != gjson.Number {
			return fmt.Errorf("expected number, got %s", v.Type)
		}
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			return fmt.Errorf("expected number, got %s", v.Raw)
		}
		*c.access.floats(rec) = f
	case KindBool:
		if v.Type != gjson.True && v.Type != gjson.False {
			return fmt.Errorf("expected boolean, got %s", v.Type)
		}
		*c.access.bools(rec) = v.Bool()
	}
	return nil
}

// Encode writes every field of rec into base and returns the JSON text.
// Keys already in base keep their position and unknown keys are kept; a
// base that is not a JSON object is replaced by an empty one.
func Encode(rec Record, base []byte) ([]byte, error) {
	doc := []byte("{}")
	if len(base) > 0 && gjson.ValidBytes(base) && gjson.ParseBytes(base).IsObject() {
		doc = append([]byte(nil), base...)
	}

	var err error
	for _, col := range schema {
		doc, err = sjson.SetRawBytes(doc, col.Name, col.raw(&rec))
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", col.Name, err)
		}
	}
	return doc, nil
}

// EncodeBlob is Encode followed by the NUL terminator the game expects.
func EncodeBlob(rec Record, base []byte) ([]byte, error) {
	text, err := Encode(rec, base)
	if err != nil {
		return nil, err
	}
	return append(text, 0), nil
}

func (c column) raw(rec *Record) []byte {
	switch c.Kind {
	case KindInt:
		return strconv.AppendInt(nil, *c.access.ints(rec), 10)
	case KindFloat:
		return formatFloat(*c.access.floats(rec))
	case KindBool:
		return strconv.AppendBool(nil, *c.access.bools(rec))
	}
	return []byte("null")
}

// formatFloat renders the shortest round-tripping form, always with a
// fractional part so the value reads back as a float ("1.0", not "1").
func formatFloat(f float64) []byte {
	b := strconv.AppendFloat(nil, f, 'f', -1, 64)
	if !bytes.ContainsAny(b, ".eE") {
		b = append(b, ".0"...)
	}
	return b
}
