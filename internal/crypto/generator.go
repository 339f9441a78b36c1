package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var (
	ErrInvalidLength    = errors.New("password length must be positive")
	ErrNoCharacterTypes = errors.New("select at least one character type")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length  int
	Upper   bool
	Lower   bool
	Digits  bool
	Special bool
}

// DefaultOptions returns the defaults used when a request omits a field:
// 12 characters from upper, lower and digits.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length: 12,
		Upper:  true,
		Lower:  true,
		Digits: true,
	}
}

// Alphabet returns the union of the enabled character classes.
func (o GeneratorOptions) Alphabet() string {
	var pool string
	if o.Lower {
		pool += lowercaseChars
	}
	if o.Upper {
		pool += uppercaseChars
	}
	if o.Digits {
		pool += digitChars
	}
	if o.Special {
		pool += specialChars
	}
	return pool
}

// Generate draws opts.Length characters uniformly, with replacement, from the
// alphabet described by opts using crypto/rand.
//
// Range checks on the length beyond positivity belong to the caller.
func Generate(opts GeneratorOptions) (string, error) {
	pool := opts.Alphabet()
	if pool == "" {
		return "", ErrNoCharacterTypes
	}
	if opts.Length <= 0 {
		return "", ErrInvalidLength
	}

	result := make([]byte, opts.Length)
	for i := range result {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
