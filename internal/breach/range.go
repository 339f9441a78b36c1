package breach

import (
	"bufio"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PrefixLength is the number of hex characters sent to the range API.
const PrefixLength = 5

var ErrMalformedRecord = errors.New("malformed range record")

// HashParts returns the upper-case SHA-1 hex digest of password split into
// the range prefix and the suffix matched locally.
func HashParts(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	return digest[:PrefixLength], digest[PrefixLength:]
}

// ParseRange scans "SUFFIX:COUNT" records and returns the count recorded for
// suffix, or 0 when it is absent. Padding records carry a count of 0.
func ParseRange(r io.Reader, suffix string) (int, error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		record := strings.TrimSpace(scanner.Text())
		if record == "" {
			continue
		}

		hashSuffix, rawCount, ok := strings.Cut(record, ":")
		if !ok {
			return 0, fmt.Errorf("line %d: %w", line, ErrMalformedRecord)
		}
		if !strings.EqualFold(hashSuffix, suffix) {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(rawCount))
		if err != nil || count < 0 {
			return 0, fmt.Errorf("line %d: %w", line, ErrMalformedRecord)
		}
		return count, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, nil
}
