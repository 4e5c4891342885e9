// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags it registers:
//
//   - fingerprint: a lowercase hex string decoding to exactly 32 bytes.
//   - base58: a non-empty string drawn from the Bitcoin base58 alphabet.
//
// This package is initialized automatically and safe to use directly.
package validator

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidationFailed = errors.New("struct validation failed")

// FingerprintSize is the decoded length required by the fingerprint tag.
const FingerprintSize = 32

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Identifier': value 'zz' does not meet the requirements for the 'fingerprint' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	// Registration only fails on an empty tag or nil func.
	_ = validator.RegisterValidation("fingerprint", isFingerprint)
	_ = validator.RegisterValidation("base58", isBase58)
}

// IsFingerprint reports whether s is lowercase hex of exactly FingerprintSize bytes.
func IsFingerprint(s string) bool {
	if s != strings.ToLower(s) {
		return false
	}

	raw, err := hex.DecodeString(s)
	return err == nil && len(raw) == FingerprintSize
}

func isFingerprint(fl gvalidator.FieldLevel) bool {
	return IsFingerprint(fl.Field().String())
}

func isBase58(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}

	for _, r := range s {
		if !strings.ContainsRune(base58Alphabet, r) {
			return false
		}
	}
	return true
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidationFailed as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		err := fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
