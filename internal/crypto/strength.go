package crypto

import "unicode/utf16"

// Strength labels, weakest first.
const (
	LabelWeak       = "Weak"
	LabelModerate   = "Moderate"
	LabelStrong     = "Strong"
	LabelVeryStrong = "Very Strong"
)

// StrengthReport is the heuristic score of a password.
type StrengthReport struct {
	Score int
	Label string
}

// Strength scores a password between 0 and 100 from its length, the
// character classes it uses and a few weak patterns.
//
// Length and runs are measured in UTF-16 code units so scores match the
// browser front-end for characters outside the Basic Multilingual Plane.
func Strength(password string) StrengthReport {
	score := 0
	units := utf16.Encode([]rune(password))

	switch n := len(units); {
	case n >= 12:
		score += 25
	case n >= 8:
		score += 15
	case n >= 6:
		score += 10
	}

	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}

	if lower {
		score += 10
	}
	if upper {
		score += 10
	}
	if digit {
		score += 10
	}
	if other {
		score += 15
	}

	if hasRun(units, 3) {
		score -= 10
	}
	if password != "" && !digit && !other {
		score -= 10
	}
	if password != "" && digit && !lower && !upper && !other {
		score -= 15
	}

	score = max(0, min(100, score))

	return StrengthReport{Score: score, Label: labelFor(score)}
}

func labelFor(score int) string {
	switch {
	case score < 30:
		return LabelWeak
	case score < 60:
		return LabelModerate
	case score < 80:
		return LabelStrong
	default:
		return LabelVeryStrong
	}
}

// hasRun reports whether any code unit repeats at least n times in a row.
// Line terminators never form a run.
func hasRun(units []uint16, n int) bool {
	var prev uint16
	count := 0
	for i, u := range units {
		switch {
		case isLineTerminator(u):
			count = 0
		case i > 0 && u == prev:
			count++
		default:
			count = 1
		}
		if count >= n {
			return true
		}
		prev = u
	}
	return false
}

func isLineTerminator(u uint16) bool {
	return u == '\n' || u == '\r' || u == 0x2028 || u == 0x2029
}
