// assert_test.go - Test assertions utilities.
// SPDX-License-Identifier: GPL-3.0-or-later

package assert

import (
	"errors"
	"testing"
)

// errDuplicateAlias stands in for the kind of invariant violation sigparse
// itself panics on through this package (see parse.go's use of
// assert.True to guard a condition the scanner is supposed to make
// impossible).
var errDuplicateAlias = errors.New(`alias "--count" registered twice`)

func TestTrue(t *testing.T) {
	tests := []struct {
		name      string
		condition bool
		message   string
		wantPanic bool
	}{
		{
			name:      "scanner produced a token for a non-empty argv",
			condition: true,
			message:   "cliScanner.Scan failed despite a non-empty argv",
			wantPanic: false,
		},
		{
			name:      "signature built with a duplicate alias slipped through validation",
			condition: false,
			message:   "duplicate alias reached the parse loop unchecked",
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				switch {
				case tt.wantPanic && r != nil:
					err, ok := r.(error)
					if !ok {
						t.Fatalf("expected panic value to be error, got %T", r)
					}
					if err.Error() != tt.message {
						t.Fatalf("expected panic message %q, got %q", tt.message, err.Error())
					}

				case tt.wantPanic:
					t.Fatalf("expected panic but got none")

				case r != nil:
					t.Fatalf("unexpected panic: %v", r)
				}
			}()

			True(tt.condition, tt.message)

			if tt.wantPanic {
				t.Fatalf("expected panic but got none")
			}
		})
	}
}

func TestTrue1(t *testing.T) {
	tests := []struct {
		name      string
		condition bool
		wantPanic bool
	}{
		{
			name:      "token index was within bounds",
			condition: true,
			wantPanic: false,
		},
		{
			name:      "token index ran past the end of InArgs",
			condition: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				switch {
				case tt.wantPanic && r != nil:
					err, ok := r.(error)
					if !ok {
						t.Fatalf("expected panic value to be error, got %T", r)
					}
					expect := "assertion failed"
					if err.Error() != expect {
						t.Fatalf("expected panic message %q, got %q", expect, err.Error())
					}

				case tt.wantPanic:
					t.Fatalf("expected panic but got none")

				case r != nil:
					t.Fatalf("unexpected panic: %v", r)
				}
			}()

			got := True1("--count", tt.condition)

			if tt.wantPanic {
				t.Fatalf("expected panic but got none")
			}

			if got != "--count" {
				t.Fatalf("expected return value %q, got %q", "--count", got)
			}
		})
	}
}

func TestNotError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantPanic bool
	}{
		{
			name:      "scanner classified the token cleanly",
			err:       nil,
			wantPanic: false,
		},
		{
			name:      "scanner rejected a token the caller already validated",
			err:       errDuplicateAlias,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				switch {
				case tt.wantPanic && r != nil:
					err, ok := r.(error)
					if !ok {
						t.Fatalf("expected panic value to be error, got %T", r)
					}
					if !errors.Is(err, tt.err) {
						t.Fatalf("expected panic error %v, got %v", tt.err, err)
					}

				case tt.wantPanic:
					t.Fatalf("expected panic but got none")

				case r != nil:
					t.Fatalf("unexpected panic: %v", r)
				}
			}()

			NotError(tt.err)

			if tt.wantPanic {
				t.Fatalf("expected panic but got none")
			}
		})
	}
}

func TestNotError1(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantPanic bool
	}{
		{
			name:      "conversion succeeded",
			err:       nil,
			wantPanic: false,
		},
		{
			name:      "conversion failed unexpectedly",
			err:       errDuplicateAlias,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				switch {
				case tt.wantPanic && r != nil:
					err, ok := r.(error)
					if !ok {
						t.Fatalf("expected panic value to be error, got %T", r)
					}
					if !errors.Is(err, tt.err) {
						t.Fatalf("expected panic error %v, got %v", tt.err, err)
					}

				case tt.wantPanic:
					t.Fatalf("expected panic but got none")

				case r != nil:
					t.Fatalf("unexpected panic: %v", r)
				}
			}()

			got := NotError1("--count", tt.err)

			if tt.wantPanic {
				t.Fatalf("expected panic but got none")
			}

			if got != "--count" {
				t.Fatalf("expected return value %q, got %q", "--count", got)
			}
		})
	}
}
