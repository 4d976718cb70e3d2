package variant

// Builder assembles a Definition fluently. Validation happens in Build.
type Builder struct {
	def Definition
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{def: Definition{Defaults: make(map[string]string)}}
}

// V declares an axis value from a space-separated class string.
func V(name, classes string) Value {
	return Value{Name: name, Classes: Tokens(classes)}
}

// Base appends base class tokens from a space-separated string.
func (b *Builder) Base(classes string) *Builder {
	b.def.Base = append(b.def.Base, Tokens(classes)...)
	return b
}

// Axis declares an axis with its values in order.
func (b *Builder) Axis(name string, values ...Value) *Builder {
	b.def.Axes = append(b.def.Axes, Axis{Name: name, Values: values})
	return b
}

// Flag declares a boolean axis with "true" and "false" values.
func (b *Builder) Flag(name, whenTrue, whenFalse string) *Builder {
	return b.Axis(name, V("true", whenTrue), V("false", whenFalse))
}

// Default sets the value used when a selection omits axis.
func (b *Builder) Default(axis, value string) *Builder {
	b.def.Defaults[axis] = value
	return b
}

// Compound appends a rule applied when every entry of match resolves as given.
func (b *Builder) Compound(match Match, classes string) *Builder {
	b.def.Compound = append(b.def.Compound, CompoundRule{Match: match, Classes: Tokens(classes)})
	return b
}

// Build validates the accumulated definition.
func (b *Builder) Build() (*Spec, error) {
	return NewSpec(b.def)
}

// MustBuild is like Build but panics on an invalid definition. It is meant for
// package-level specs whose contents are fixed at compile time.
func (b *Builder) MustBuild() *Spec {
	spec, err := b.Build()
	if err != nil {
		panic(err)
	}
	return spec
}
