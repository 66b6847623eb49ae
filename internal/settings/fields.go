package settings

import (
	"fmt"
	"strconv"
)

// floatEpsilon absorbs round-trip drift when matching stored floats
// against domain values.
const floatEpsilon = 0.001

// IntOption is one legal value of an integer field. Name overrides the
// numeric label when set.
type IntOption struct {
	Value int64
	Name  string
}

// Label returns the text shown for the option.
func (o IntOption) Label() string {
	if o.Name != "" {
		return o.Name
	}
	return strconv.FormatInt(o.Value, 10)
}

// FloatOption is one legal value of a float field.
type FloatOption struct {
	Value float64
}

// Label returns the value with one decimal place.
func (o FloatOption) Label() string {
	return formatScale(o.Value)
}

func formatScale(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// Descriptor binds an editable field to its value domain. Ints is set for
// KindInt, Floats for KindFloat; bool fields carry no table.
type Descriptor struct {
	ID     FieldID
	Kind   Kind
	Ints   []IntOption
	Floats []FloatOption
	access accessor
}

// Size returns the number of values in the domain.
func (d Descriptor) Size() int {
	switch d.Kind {
	case KindInt:
		return len(d.Ints)
	case KindFloat:
		return len(d.Floats)
	case KindBool:
		return 2
	}
	return 0
}

// Int returns the field's current value from r. It panics if d is not an
// integer field.
func (d Descriptor) Int(r *Record) int64 { return *d.access.ints(r) }

// Float returns the field's current value from r. It panics if d is not a
// float field.
func (d Descriptor) Float(r *Record) float64 { return *d.access.floats(r) }

// Bool returns the field's current value from r. It panics if d is not a
// bool field.
func (d Descriptor) Bool(r *Record) bool { return *d.access.bools(r) }

// Display renders the current value as its domain label. on and off are
// used for bool fields. Values outside the domain fall back to their
// numeric text.
func (d Descriptor) Display(r *Record, on, off string) string {
	switch d.Kind {
	case KindInt:
		cur := d.Int(r)
		if i := indexInt(d.Ints, cur); i >= 0 {
			return d.Ints[i].Label()
		}
		return strconv.FormatInt(cur, 10)
	case KindFloat:
		cur := d.Float(r)
		if i := indexFloat(d.Floats, cur); i >= 0 {
			return d.Floats[i].Label()
		}
		return formatScale(cur)
	case KindBool:
		if d.Bool(r) {
			return on
		}
		return off
	}
	return ""
}

// InDomain reports whether the field's current value is a legal value.
func (d Descriptor) InDomain(r *Record) bool {
	switch d.Kind {
	case KindInt:
		return indexInt(d.Ints, d.Int(r)) >= 0
	case KindFloat:
		return indexFloat(d.Floats, d.Float(r)) >= 0
	}
	return true
}

// OutOfDomain returns the editable fields of r whose current value is not
// one of their legal values.
func OutOfDomain(r *Record) []Descriptor {
	var out []Descriptor
	for _, d := range registry {
		if !d.InDomain(r) {
			out = append(out, d)
		}
	}
	return out
}

func indexInt(opts []IntOption, v int64) int {
	for i, o := range opts {
		if o.Value == v {
			return i
		}
	}
	return -1
}

func indexFloat(opts []FloatOption, v float64) int {
	for i, o := range opts {
		d := o.Value - v
		if d < 0 {
			d = -d
		}
		if d < floatEpsilon {
			return i
		}
	}
	return -1
}

// intRange returns options for lo..hi inclusive with numeric labels.
func intRange(lo, hi int64) []IntOption {
	opts := make([]IntOption, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		opts = append(opts, IntOption{Value: v})
	}
	return opts
}

// scaleRange returns tenths lo/10..hi/10 stepping by step tenths.
func scaleRange(lo, hi, step int) []FloatOption {
	var opts []FloatOption
	for v := lo; v <= hi; v += step {
		opts = append(opts, FloatOption{Value: float64(v) / 10.0})
	}
	return opts
}

func intField(id FieldID, opts []IntOption) Descriptor {
	return Descriptor{ID: id, Kind: KindInt, Ints: opts, access: schema[id].access}
}

func floatField(id FieldID, opts []FloatOption) Descriptor {
	return Descriptor{ID: id, Kind: KindFloat, Floats: opts, access: schema[id].access}
}

func boolField(id FieldID) Descriptor {
	return Descriptor{ID: id, Kind: KindBool, access: schema[id].access}
}

// registry is the ordered catalog of editable fields. MetalFXSU and
// HalfResTransparent are stored but not editable.
var registry = buildRegistry()

func buildRegistry() []Descriptor {
	quality := intRange(1, 5)
	offOn := []IntOption{{Value: 0, Name: "Off"}, {Value: 1, Name: "On"}}
	dlss := append([]IntOption{{Value: 0, Name: "Off"}}, intRange(1, 5)...)

	return []Descriptor{
		intField(Fps, []IntOption{{Value: 30}, {Value: 60}, {Value: 120}}),
		boolField(VSync),
		floatField(RenderScale, scaleRange(6, 20, 2)),
		intField(ResolutionQuality, quality),
		intField(ShadowQuality, quality),
		intField(LightQuality, quality),
		intField(CharacterQuality, quality),
		intField(EnvDetailQuality, quality),
		intField(ReflectionQuality, quality),
		intField(SfxQuality, quality),
		intField(BloomQuality, quality),
		intField(AaMode, offOn),
		intField(SelfShadow, offOn),
		intField(DlssQuality, dlss),
		intField(ParticleTrail, quality),
	}
}

// AllFields returns the editable fields in display and navigation order.
// The returned slice may be modified by the caller; the option tables are
// shared and must not be.
func AllFields() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the descriptor for an editable field.
func Lookup(id FieldID) (Descriptor, bool) {
	for _, d := range registry {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}
