package validation

import (
	"strings"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"non-empty string", "Build API", true},
		{"empty string", "", false},
		{"whitespace only", "   \t  ", false},
		// The required rule checks the trimmed string form, and "0" is
		// non-empty. Numeric emptiness is the job of Min/Max bounds.
		{"zero number", 0, true},
		{"positive number", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(Spec{Value: tt.value, Required: true})
			if got != tt.want {
				t.Errorf("Validate(required, %v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

// TestValidateMinLengthStrict pins the exclusive bound: a value of length m
// must fail MinLength=m and pass only when strictly longer.
func TestValidateMinLengthStrict(t *testing.T) {
	t.Parallel()

	const minLen = 5
	for length := 0; length <= 20; length++ {
		value := strings.Repeat("x", length)
		got := Validate(Spec{Value: value, MinLength: MinLength(minLen)})
		want := length > minLen
		if got != want {
			t.Errorf("Validate(len=%d, MinLength=%d) = %v, want %v", length, minLen, got, want)
		}
	}
}

func TestValidateMaxLengthStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length int
		max    int
		want   bool
	}{
		{4, 5, true},
		{5, 5, false},
		{6, 5, false},
	}

	for _, tt := range tests {
		value := strings.Repeat("x", tt.length)
		got := Validate(Spec{Value: value, MaxLength: MaxLength(tt.max)})
		if got != tt.want {
			t.Errorf("Validate(len=%d, MaxLength=%d) = %v, want %v", tt.length, tt.max, got, tt.want)
		}
	}
}

func TestValidateNumericBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
		want bool
	}{
		{"above min", Spec{Value: 2, Min: Min(1)}, true},
		{"equal to min fails", Spec{Value: 1, Min: Min(1)}, false},
		{"below min", Spec{Value: 0, Min: Min(1)}, false},
		{"below max", Spec{Value: 4, Max: Max(5)}, true},
		{"equal to max fails", Spec{Value: 5, Max: Max(5)}, false},
		{"within both bounds", Spec{Value: 3, Min: Min(0), Max: Max(6)}, true},
		{"float value", Spec{Value: 2.5, Min: Min(2), Max: Max(3)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.spec); got != tt.want {
				t.Errorf("Validate(%+v) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

// TestValidateRulesAreANDed checks that one failing rule fails the whole spec.
func TestValidateRulesAreANDed(t *testing.T) {
	t.Parallel()

	spec := Spec{
		Value:     "hello",
		Required:  true,
		MinLength: MinLength(3),
		MaxLength: MaxLength(5), // len("hello") == 5, strict bound fails
	}
	if Validate(spec) {
		t.Error("expected spec with one failing rule to be invalid")
	}
}

// TestValidateLengthBoundsIgnoreNumbers checks that textual constraints do
// not apply to numeric values and vice versa.
func TestValidateLengthBoundsIgnoreNumbers(t *testing.T) {
	t.Parallel()

	if !Validate(Spec{Value: 3, MinLength: MinLength(10)}) {
		t.Error("MinLength should not apply to a numeric value")
	}
	if !Validate(Spec{Value: "abc", Min: Min(100)}) {
		t.Error("Min should not apply to a textual value")
	}
}
