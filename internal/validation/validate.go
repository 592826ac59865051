// Package validation holds the single-pass input predicate used by the
// project form and the CLI create command.
package validation

import (
	"fmt"
	"strings"
)

// Spec describes one value to check. Only the constraints that are set
// (non-nil) apply; all applicable constraints are ANDed together.
type Spec struct {
	Value     any // string or numeric (int / int64 / float64)
	Required  bool
	MinLength *int     // textual values only
	MaxLength *int     // textual values only
	Min       *float64 // numeric values only
	Max       *float64 // numeric values only
}

// Validate reports whether the value satisfies every applicable rule.
// The caller only gets a single boolean; surfacing a generic failure
// message for any violation is the caller's responsibility.
//
// Length and numeric bounds are strict (exclusive): a textual value of
// length m fails MinLength=m. This matches the behavior the board has
// always had, so it stays; callers sizing their limits must account
// for it.
func Validate(spec Spec) bool {
	valid := true

	if spec.Required {
		valid = valid && strings.TrimSpace(stringForm(spec.Value)) != ""
	}

	if s, ok := spec.Value.(string); ok {
		if spec.MinLength != nil {
			valid = valid && len(s) > *spec.MinLength
		}
		if spec.MaxLength != nil {
			valid = valid && len(s) < *spec.MaxLength
		}
	}

	if n, ok := numericForm(spec.Value); ok {
		if spec.Min != nil {
			valid = valid && n > *spec.Min
		}
		if spec.Max != nil {
			valid = valid && n < *spec.Max
		}
	}

	return valid
}

// MinLength returns a pointer suitable for Spec.MinLength.
func MinLength(n int) *int { return &n }

// MaxLength returns a pointer suitable for Spec.MaxLength.
func MaxLength(n int) *int { return &n }

// Min returns a pointer suitable for Spec.Min.
func Min(n float64) *float64 { return &n }

// Max returns a pointer suitable for Spec.Max.
func Max(n float64) *float64 { return &n }

// stringForm renders any supported value as a string for the Required check.
func stringForm(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// numericForm extracts a float64 from the supported numeric kinds.
func numericForm(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
