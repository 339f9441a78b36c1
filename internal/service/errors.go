package service

import (
	"errors"
	"fmt"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/export"
)

const (
	MinLength     = 4
	MaxLength     = 128
	DefaultLength = 12

	// MaxExportPasswords caps a single export request.
	MaxExportPasswords = 1000
)

// Validation errors: the request itself is wrong.
var (
	ErrLengthOutOfRange  = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)
	ErrPasswordRequired  = errors.New("password is required")
	ErrUnsupportedFormat = export.ErrUnsupportedFormat
	ErrTooManyPasswords  = fmt.Errorf("too many passwords in export request (max %d)", MaxExportPasswords)
	ErrControlCharacter  = errors.New("passwords must not contain control characters")
)

// IsValidation reports whether err is caused by a malformed request value.
func IsValidation(err error) bool {
	return errors.Is(err, ErrLengthOutOfRange) ||
		errors.Is(err, ErrPasswordRequired) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrTooManyPasswords) ||
		errors.Is(err, ErrControlCharacter)
}

// IsConfiguration reports whether err is caused by an unusable generator
// configuration, such as every character class being disabled.
func IsConfiguration(err error) bool {
	return errors.Is(err, crypto.ErrNoCharacterTypes)
}
