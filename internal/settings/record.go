// Package settings is the graphics settings engine: the record stored in
// the game's registry value, the catalog of editable fields with their
// legal values, value cycling, and the blob codec and store adapter.
package settings

import "strconv"

// Record holds every graphics setting. It is always fully populated.
// Integer fields are 64-bit to hold any value the game's JSON may carry.
type Record struct {
	FPS                int64
	EnableVSync        bool
	RenderScale        float64
	ResolutionQuality  int64
	ShadowQuality      int64
	LightQuality       int64
	CharacterQuality   int64
	EnvDetailQuality   int64
	ReflectionQuality  int64
	SFXQuality         int64
	BloomQuality       int64
	AAMode             int64
	EnableMetalFXSU    bool
	EnableHalfResTrans bool
	EnableSelfShadow   int64
	DLSSQuality        int64
	ParticleTrail      int64
}

// Defaults returns the record used when nothing valid is stored.
func Defaults() Record {
	return Record{
		FPS:                60,
		EnableVSync:        true,
		RenderScale:        1.0,
		ResolutionQuality:  3,
		ShadowQuality:      3,
		LightQuality:       3,
		CharacterQuality:   3,
		EnvDetailQuality:   3,
		ReflectionQuality:  3,
		SFXQuality:         3,
		BloomQuality:       3,
		AAMode:             1,
		EnableMetalFXSU:    false,
		EnableHalfResTrans: false,
		EnableSelfShadow:   1,
		DLSSQuality:        0,
		ParticleTrail:      3,
	}
}

// FieldID identifies one record field. Values are append-only; never
// reorder them.
type FieldID int

const (
	Fps FieldID = iota
	VSync
	RenderScale
	ResolutionQuality
	ShadowQuality
	LightQuality
	CharacterQuality
	EnvDetailQuality
	ReflectionQuality
	SfxQuality
	BloomQuality
	AaMode
	MetalFXSU
	HalfResTransparent
	SelfShadow
	DlssQuality
	ParticleTrail

	numFields
)

// Kind is the value domain kind of a field.
type Kind int

const (
	KindInt   Kind = iota // discrete integer set
	KindFloat             // discrete float set, tolerant lookup
	KindBool              // on/off
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	}
	return "unknown"
}

// accessor reaches one field of a Record. Exactly one member is set,
// matching the column kind.
type accessor struct {
	ints   func(*Record) *int64
	floats func(*Record) *float64
	bools  func(*Record) *bool
}

// column maps a FieldID to its external JSON name and storage.
type column struct {
	ID     FieldID
	Name   string
	Kind   Kind
	access accessor
}

func intCol(id FieldID, name string, f func(*Record) *int64) column {
	return column{ID: id, Name: name, Kind: KindInt, access: accessor{ints: f}}
}

func floatCol(id FieldID, name string, f func(*Record) *float64) column {
	return column{ID: id, Name: name, Kind: KindFloat, access: accessor{floats: f}}
}

func boolCol(id FieldID, name string, f func(*Record) *bool) column {
	return column{ID: id, Name: name, Kind: KindBool, access: accessor{bools: f}}
}

// schema lists every stored field in FieldID order. The names are an
// external contract shared with the game and are case-sensitive.
var schema = [numFields]column{
	intCol(Fps, "FPS", func(r *Record) *int64 { return &r.FPS }),
	boolCol(VSync, "EnableVSync", func(r *Record) *bool { return &r.EnableVSync }),
	floatCol(RenderScale, "RenderScale", func(r *Record) *float64 { return &r.RenderScale }),
	intCol(ResolutionQuality, "ResolutionQuality", func(r *Record) *int64 { return &r.ResolutionQuality }),
	intCol(ShadowQuality, "ShadowQuality", func(r *Record) *int64 { return &r.ShadowQuality }),
	intCol(LightQuality, "LightQuality", func(r *Record) *int64 { return &r.LightQuality }),
	intCol(CharacterQuality, "CharacterQuality", func(r *Record) *int64 { return &r.CharacterQuality }),
	intCol(EnvDetailQuality, "EnvDetailQuality", func(r *Record) *int64 { return &r.EnvDetailQuality }),
	intCol(ReflectionQuality, "ReflectionQuality", func(r *Record) *int64 { return &r.ReflectionQuality }),
	intCol(SfxQuality, "SFXQuality", func(r *Record) *int64 { return &r.SFXQuality }),
	intCol(BloomQuality, "BloomQuality", func(r *Record) *int64 { return &r.BloomQuality }),
	intCol(AaMode, "AAMode", func(r *Record) *int64 { return &r.AAMode }),
	boolCol(MetalFXSU, "EnableMetalFXSU", func(r *Record) *bool { return &r.EnableMetalFXSU }),
	boolCol(HalfResTransparent, "EnableHalfResTransparent", func(r *Record) *bool { return &r.EnableHalfResTrans }),
	intCol(SelfShadow, "EnableSelfShadow", func(r *Record) *int64 { return &r.EnableSelfShadow }),
	intCol(DlssQuality, "DLSSQuality", func(r *Record) *int64 { return &r.DLSSQuality }),
	intCol(ParticleTrail, "ParticleTrailSmoothness", func(r *Record) *int64 { return &r.ParticleTrail }),
}

// ExternalName returns the JSON key a field is stored under, or "" for an
// unknown ID.
func (id FieldID) ExternalName() string {
	if id < 0 || id >= numFields {
		return ""
	}
	return schema[id].Name
}

func (id FieldID) String() string {
	if name := id.ExternalName(); name != "" {
		return name
	}
	return "FieldID(" + strconv.Itoa(int(id)) + ")"
}
