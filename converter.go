// converter.go - value converters.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import (
	"reflect"
	"strconv"
)

// ValueConverter turns the text of one command-line argument into a typed
// value, or reports that the text is malformed.
//
// [*CLISignature.Parse] wraps a failing [ValueConverter.Convert] call in a
// [*BadArgumentFormatError] that references the parameter and the token
// that failed to convert.
type ValueConverter interface {
	// Convert parses text into a value, or returns an error describing
	// why text isn't a valid representation of the target type.
	Convert(text string) (any, error)

	// CLIType returns the display name used in help and error messages,
	// e.g. "INT", "FLOAT", "STR".
	CLIType() string
}

// --- built-in converters ---

type intConverter struct{}

// IntConverter is the built-in [ValueConverter] for `int` values.
var IntConverter ValueConverter = intConverter{}

func (intConverter) Convert(text string) (any, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, err
	}
	return int(v), nil
}

func (intConverter) CLIType() string { return "INT" }

type floatConverter struct{}

// FloatConverter is the built-in [ValueConverter] for `float64` values.
var FloatConverter ValueConverter = floatConverter{}

func (floatConverter) Convert(text string) (any, error) {
	return strconv.ParseFloat(text, 64)
}

func (floatConverter) CLIType() string { return "FLOAT" }

type boolConverter struct{}

// BoolConverter is the built-in [ValueConverter] for `bool` values.
//
// It is rarely invoked directly: the default converter turns every
// `bool` struct field into a [Flag] instead of an [Option], so
// `BoolConverter` only comes into play when a `bool` parameter is
// explicitly built as an [Option] (e.g. supplied through
// [DefaultConverter]'s FieldParameters override).
var BoolConverter ValueConverter = boolConverter{}

func (boolConverter) Convert(text string) (any, error) {
	return strconv.ParseBool(text)
}

func (boolConverter) CLIType() string { return "BOOL" }

type stringConverter struct{}

// StringConverter is the identity [ValueConverter] for `string` values.
var StringConverter ValueConverter = stringConverter{}

func (stringConverter) Convert(text string) (any, error) { return text, nil }

func (stringConverter) CLIType() string { return "STR" }

type bytesConverter struct{}

// BytesConverter is the identity [ValueConverter] for `[]byte` values: it
// does not decode or validate the text, it merely copies it into bytes.
var BytesConverter ValueConverter = bytesConverter{}

func (bytesConverter) Convert(text string) (any, error) { return []byte(text), nil }

func (bytesConverter) CLIType() string { return "BYTES" }

// --- registry ---

// registry maps the reflect.Type of a Go zero value to the built-in
// [ValueConverter] used to parse arguments destined for fields of that
// type. [SignatureConverter] consults this registry in step 4 of the
// default-conversion algorithm: when a field has no explicit converter,
// the converter is derived from the field's own type.
var registry = map[reflect.Type]ValueConverter{
	reflect.TypeOf(int(0)):      IntConverter,
	reflect.TypeOf(float64(0)):  FloatConverter,
	reflect.TypeOf(bool(false)): BoolConverter,
	reflect.TypeOf(string("")):  StringConverter,
	reflect.TypeOf([]byte(nil)): BytesConverter,
}

// LookupConverter returns the built-in [ValueConverter] registered for the
// given reflect.Type, if any.
func LookupConverter(t reflect.Type) (ValueConverter, bool) {
	conv, ok := registry[t]
	return conv, ok
}

// RegisterConverter adds or replaces the built-in [ValueConverter] used
// for the given type. This lets callers teach the default converter about
// additional primitive types (e.g. time.Duration) without touching every
// call site that builds a [Parameter] by hand.
func RegisterConverter(t reflect.Type, conv ValueConverter) {
	registry[t] = conv
}

// IsValueConverter reports whether v implements [ValueConverter]. Go has
// no equivalent of a runtime marker attribute on a plain function;
// satisfying the interface is the marker.
func IsValueConverter(v any) (ValueConverter, bool) {
	conv, ok := v.(ValueConverter)
	return conv, ok
}
