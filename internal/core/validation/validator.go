// Package validation holds the stateless predicate set gating account
// creation. Each predicate is total: defined for every string input, never
// panics. The same rules are registered on a go-playground/validator engine
// so that whole registration requests can be checked via struct tags.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	dobLayout         = "2006-01-02"
	minPasswordLength = 6
	specialCharacters = "!@#$%^&*()<>?,./"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	dobPattern   = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

// engine carries the custom rules under the tags used by
// dto.RegisterAccountRequest: name, simpleemail, dob, phone10, accountpwd.
var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// The rule funcs never inspect anything but the field value, so
	// registration cannot fail; errors here would be programmer mistakes.
	_ = v.RegisterValidation("name", func(fl validator.FieldLevel) bool {
		return ValidateName(fl.Field().String())
	})
	_ = v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return ValidateEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("dob", func(fl validator.FieldLevel) bool {
		return ValidateDOB(fl.Field().String())
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return ValidatePhoneNumber(fl.Field().String())
	})
	_ = v.RegisterValidation("accountpwd", func(fl validator.FieldLevel) bool {
		return ValidatePassword(fl.Field().String())
	})
	return v
}

// ValidateStruct runs the tagged rules over a whole request. The returned
// error is a validator.ValidationErrors listing every failing field.
func ValidateStruct(s any) error {
	return engine.Struct(s)
}

// ValidateName reports whether s is a non-empty run of letters only.
// No digits, spaces or punctuation, so multi-word names are rejected.
func ValidateName(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ValidateEmail reports whether s has a simple local@domain.tld shape:
// one @, no whitespace, at least one dot in the domain part.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateDOB reports whether s is an exact YYYY-MM-DD calendar date.
// Non-existent dates, wrong separators, unpadded parts and trailing
// characters all fail.
func ValidateDOB(s string) bool {
	if !dobPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dobLayout, s)
	return err == nil
}

// ValidatePhoneNumber reports whether s is exactly 10 ASCII digits.
func ValidatePhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidatePassword reports whether s is at least 6 characters and contains
// at least one letter, one digit and one of !@#$%^&*()<>?,./
func ValidatePassword(s string) bool {
	if utf8.RuneCountInString(s) < minPasswordLength {
		return false
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(specialCharacters, r) {
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}
