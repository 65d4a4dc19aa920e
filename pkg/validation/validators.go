package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// Fixed experience labels offered by the work-experience form.
	experienceRegex = regexp.MustCompile(`^(1 year|[2-9] years|10 years|10\+ years)$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_experience", ValidExperience)
}

// ValidName validates that a string contains only valid name characters
// Rejects most special symbols
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidExperience validates an experience label against the fixed set
// ("1 year" .. "10 years", "10+ years"). Empty means unselected and is
// handled by omitempty.
func ValidExperience(fl validator.FieldLevel) bool {
	return experienceRegex.MatchString(fl.Field().String())
}
