// sigconv.go - converting a callee's struct shape into a []Parameter.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import (
	"reflect"
	"strings"
	"unicode"
)

// Rest marks a field as the variadic positional collector: a field of
// this type is always converted into an [ExtraPositional], regardless
// of any `cli:"..."` tag. It plays the role the reference
// implementation gives a function's *args slot, which Go structs have
// no equivalent of.
type Rest []string

// SignatureConverter turns a pointer to a struct describing a callee's
// parameters into the []Parameter a [CLISignature] is built from. Go
// can't introspect a function's parameter names at runtime, so sigparse
// asks the caller to describe them as a struct instead, walked field by
// field with `reflect.StructField` standing in for per-parameter
// annotations.
type SignatureConverter interface {
	Convert(target any) ([]Parameter, error)
}

// DefaultConverter is the built-in [SignatureConverter]. Every exported
// field becomes one parameter unless overridden:
//
//   - A field of type [Rest], or tagged `cli:"rest"`, becomes an
//     [ExtraPositional].
//   - A bool field becomes a [Flag].
//   - A field tagged `cli:"alias=..."` becomes an [Option] triggered by
//     those aliases — or an [IntOption] when the field's resolved
//     converter is [IntConverter], so int-valued flags get the
//     digit-tail short form for free.
//   - Every other field becomes a [Positional].
//
// Field name translation follows Go's CamelCase convention down to
// dash-case (MaxRetries -> "max-retries"), the usual convention for
// long option names.
type DefaultConverter struct {
	// FieldConverters overrides the [ValueConverter] sigparse would
	// otherwise derive from a field's Go type, keyed by field name.
	FieldConverters map[string]ValueConverter

	// FieldParameters bypasses inference entirely for the named field,
	// using the given [Parameter] as-is.
	FieldParameters map[string]Parameter

	// FieldConverterFuncs resolves `cli:"conv=name"` tags to an ad-hoc
	// conversion function, for value types [LookupConverter] doesn't
	// know about and that don't warrant a full [ValueConverter].
	FieldConverterFuncs map[string]func(string) (any, error)
}

var restType = reflect.TypeOf(Rest(nil))

// Convert implements [SignatureConverter]. target must be a non-nil
// pointer to a struct.
func (d *DefaultConverter) Convert(target any) ([]Parameter, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return nil, &UnconvertibleParameterError{Field: "<target>"}
	}
	rt := rv.Elem().Type()

	var params []Parameter

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		if override, ok := d.FieldParameters[field.Name]; ok {
			params = append(params, override)
			continue
		}

		items := parseAnnotations(field.Tag.Get("cli"))
		if err := checkConverterAnnotation(field, items); err != nil {
			return nil, err
		}

		p, err := d.buildParameter(field, items)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}

	return params, nil
}

// checkConverterAnnotation enforces that a field's `cli:"..."` tag names
// a `conv=` value-coercion override at most once, and only as the tag's
// first item. The override only replaces the function that turns one
// argument string into a Go value for this field — it does not replace
// the [Parameter] variant the field becomes, unlike
// [DefaultConverter.FieldParameters], which does.
func checkConverterAnnotation(field reflect.StructField, items annotationItems) error {
	var positions []int
	for i, it := range items {
		if it.kind == annConverter {
			positions = append(positions, i)
		}
	}
	if len(positions) > 1 {
		return &DuplicateConverterError{Field: field.Name}
	}
	if len(positions) == 1 && positions[0] != 0 {
		return &MisplacedParameterConverterError{Field: field.Name}
	}
	return nil
}

func (d *DefaultConverter) buildParameter(field reflect.StructField, items annotationItems) (Parameter, error) {
	name := translateName(field.Name)

	if field.Type == restType || items.has(annRest) {
		conv, err := d.resolveConverter(field, items, reflect.TypeOf(""))
		if err != nil {
			return nil, err
		}
		p := NewExtraPositional(name, conv, items.has(annRequired))
		applyCommonTags(&p.common, items)
		return p, nil
	}

	if field.Type.Kind() == reflect.Bool {
		aliases := items.aliases()
		if len(aliases) == 0 {
			aliases = []string{optionPrefix(name) + name}
		}
		f := NewFlag(aliases, name, true, false)
		applyCommonTags(&f.common, items)
		return f, nil
	}

	conv, err := d.resolveConverter(field, items, field.Type)
	if err != nil {
		return nil, err
	}

	deflt := fieldDefault(field, items)

	if aliases := items.aliases(); len(aliases) > 0 {
		if conv == IntConverter {
			o := NewIntOption(aliases, name, deflt)
			applyCommonTags(&o.common, items)
			return o, nil
		}
		o := NewOption(aliases, name, conv, deflt)
		applyCommonTags(&o.common, items)
		return o, nil
	}

	p := NewPositional(name, conv, deflt)
	applyCommonTags(&p.common, items)
	return p, nil
}

func (d *DefaultConverter) resolveConverter(field reflect.StructField, items annotationItems, fallbackType reflect.Type) (ValueConverter, error) {
	if c, ok := d.FieldConverters[field.Name]; ok {
		return c, nil
	}
	if name, ok := items.value(annConverter); ok {
		if fn, ok := d.FieldConverterFuncs[name]; ok {
			return funcConverter{fn: fn, cliType: strings.ToUpper(name)}, nil
		}
		return nil, &UnconvertibleParameterError{Field: field.Name}
	}
	if c, ok := LookupConverter(fallbackType); ok {
		return c, nil
	}
	return nil, &UnconvertibleParameterError{Field: field.Name}
}

// funcConverter adapts a plain conversion function to [ValueConverter],
// for `cli:"conv=name"` overrides resolved through
// [DefaultConverter.FieldConverterFuncs].
type funcConverter struct {
	fn      func(string) (any, error)
	cliType string
}

func (f funcConverter) Convert(text string) (any, error) { return f.fn(text) }
func (f funcConverter) CLIType() string                  { return f.cliType }

func applyCommonTags(c *common, items annotationItems) {
	c.undocumented = items.has(annHidden)
	c.lastOption = items.has(annLast)
}

// fieldDefault derives a parameter's default value: `cli:"required"`
// forces [Unset] even when a `default=` tag is also present, an explicit
// `cli:"default=..."` tag supplies the default otherwise, and a field
// with neither is optional with its Go zero value as the default.
func fieldDefault(field reflect.StructField, items annotationItems) any {
	if items.has(annRequired) {
		return Unset
	}
	if raw, ok := items.value(annDefault); ok {
		return raw
	}
	return reflect.Zero(field.Type).Interface()
}

// optionPrefix picks the dash prefix by name length: a single-rune name
// gets "-", anything longer gets "--".
func optionPrefix(name string) string {
	if len([]rune(name)) == 1 {
		return "-"
	}
	return "--"
}

// translateName converts a Go exported field name to dash-case, e.g.
// "MaxRetries" -> "max-retries", "URL" -> "url".
func translateName(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimPrefix(b.String(), "-")
}
