package settings

// Cycle advances the field id of r by dir (+1 forward, -1 back), wrapping
// at either end. Fields that are not editable are left untouched.
func Cycle(r *Record, id FieldID, dir int) {
	if d, ok := Lookup(id); ok {
		d.Cycle(r, dir)
	}
}

// Cycle moves the field to the next value of its domain in direction dir.
// A current value outside the domain counts as position 0, so the result
// is always a legal value. Bool fields flip regardless of dir.
func (d Descriptor) Cycle(r *Record, dir int) {
	n := d.Size()
	if n == 0 {
		return
	}
	switch d.Kind {
	case KindInt:
		p := d.access.ints(r)
		pos := max(indexInt(d.Ints, *p), 0)
		*p = d.Ints[wrap(pos+dir, n)].Value
	case KindFloat:
		p := d.access.floats(r)
		pos := max(indexFloat(d.Floats, *p), 0)
		*p = d.Floats[wrap(pos+dir, n)].Value
	case KindBool:
		p := d.access.bools(r)
		*p = !*p
	}
}

// wrap returns i mod n in [0, n) for any sign of i.
func wrap(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
