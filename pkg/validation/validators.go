package validation

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the custom tags below registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("capitalized", Capitalized)
}

// Capitalized reports whether a string is unchanged by Capitalize. Letters
// without an upper-case form, such as "ß", pass as they are.
func Capitalized(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return val == Capitalize(val)
}

// Capitalize upper-cases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
