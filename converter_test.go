// converter_test.go - tests for built-in value converters.
// SPDX-License-Identifier: GPL-3.0-or-later

package sigparse

import (
	"reflect"
	"testing"
)

func TestIntConverter(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{name: "positive", text: "42", want: 42},
		{name: "negative", text: "-7", want: -7},
		{name: "zero", text: "0", want: 0},
		{name: "not a number", text: "abc", wantErr: true},
		{name: "float text", text: "4.2", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntConverter.Convert(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Convert(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Convert(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
	if IntConverter.CLIType() != "INT" {
		t.Errorf("CLIType() = %q, want INT", IntConverter.CLIType())
	}
}

func TestFloatConverter(t *testing.T) {
	got, err := FloatConverter.Convert("3.14")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got != 3.14 {
		t.Errorf("Convert() = %v, want 3.14", got)
	}
	if _, err := FloatConverter.Convert("nope"); err == nil {
		t.Error("Convert(\"nope\") succeeded, want error")
	}
}

func TestBoolConverter(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
	}
	for _, tt := range tests {
		got, err := BoolConverter.Convert(tt.text)
		if err != nil {
			t.Fatalf("Convert(%q) error = %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("Convert(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestStringConverter(t *testing.T) {
	got, err := StringConverter.Convert("hello world")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got != "hello world" {
		t.Errorf("Convert() = %v, want %q", got, "hello world")
	}
}

func TestBytesConverter(t *testing.T) {
	got, err := BytesConverter.Convert("abc")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !reflect.DeepEqual(got, []byte("abc")) {
		t.Errorf("Convert() = %v, want %v", got, []byte("abc"))
	}
}

func TestLookupConverter(t *testing.T) {
	if _, ok := LookupConverter(reflect.TypeOf(int(0))); !ok {
		t.Error("LookupConverter(int) not found")
	}
	if _, ok := LookupConverter(reflect.TypeOf(struct{}{})); ok {
		t.Error("LookupConverter(struct{}{}) unexpectedly found")
	}
}

func TestRegisterConverter(t *testing.T) {
	type duration int
	fake := stringConverter{}
	RegisterConverter(reflect.TypeOf(duration(0)), fake)
	defer delete(registry, reflect.TypeOf(duration(0)))

	conv, ok := LookupConverter(reflect.TypeOf(duration(0)))
	if !ok || conv != ValueConverter(fake) {
		t.Errorf("RegisterConverter did not take effect: conv=%v ok=%v", conv, ok)
	}
}

func TestIsValueConverter(t *testing.T) {
	if _, ok := IsValueConverter(IntConverter); !ok {
		t.Error("IsValueConverter(IntConverter) = false, want true")
	}
	if _, ok := IsValueConverter(42); ok {
		t.Error("IsValueConverter(42) = true, want false")
	}
}
