package errors

import (
	"math"
	"unicode"
)

// ValidateCategory validates a category label for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters
//   - Maximum length of 256 characters
func ValidateCategory(label string) error {
	if label == "" {
		return New(ErrCodeInvalidData, "category label cannot be empty")
	}

	if len(label) > 256 {
		return New(ErrCodeInvalidData, "category label too long (max 256 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidData, "category label contains invalid control characters")
		}
	}

	return nil
}

// ValidateValue rejects values the layout math cannot project (NaN, ±Inf).
func ValidateValue(label string, v float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeInvalidData, "value for %q is NaN", label)
	}
	if math.IsInf(v, 0) {
		return New(ErrCodeInvalidData, "value for %q is infinite", label)
	}
	return nil
}

// ValidateDimensions checks that a drawing surface size is usable.
func ValidateDimensions(width, height float64) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidConfig, "dimensions must be positive, got %gx%g", width, height)
	}
	return nil
}

// ValidateFontSize checks that a label font size is usable.
func ValidateFontSize(size float64) error {
	if size <= 0 {
		return New(ErrCodeInvalidConfig, "font size must be positive, got %g", size)
	}
	return nil
}

// ValidateSteps checks that a Y-axis step count is usable.
// The step count is the number of intervals between min and max, so it
// must be at least 1 (producing two tick labels).
func ValidateSteps(steps int) error {
	if steps < 1 {
		return New(ErrCodeInvalidConfig, "step count must be at least 1, got %d", steps)
	}
	return nil
}
