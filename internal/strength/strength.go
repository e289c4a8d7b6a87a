// Package strength scores password strength. The scorer is a pure
// function over the input string and works on any password, not only
// ones produced by this service.
package strength

// Qualitative labels returned by Describe.
const (
	LabelWeak       = "weak"
	LabelMedium     = "medium"
	LabelStrong     = "strong"
	LabelVeryStrong = "very strong"
)

// Score rates a password from 0 to 100.
//
// Length contributes 4 points per character up to 40. Each character
// class present (lowercase, uppercase, digits, anything else) adds 15.
// Repeated characters cost 2 points each. The total is floored at 0 and
// capped at 100.
//
// The fourth class is deliberately permissive: any rune outside ASCII
// lower/upper/digit counts as a symbol, Unicode included, since callers
// submit arbitrary strings.
func Score(password string) int {
	if password == "" {
		return 0
	}

	runes := []rune(password)
	length := len(runes)

	score := length * 4
	if score > 40 {
		score = 40
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	distinct := make(map[rune]struct{}, length)
	for _, r := range runes {
		distinct[r] = struct{}{}
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if present {
			score += 15
		}
	}

	score -= (length - len(distinct)) * 2

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Describe maps a score onto its qualitative label. Band lower bounds
// are inclusive: 40 is medium, 70 is strong, 90 is very strong.
func Describe(score int) string {
	switch {
	case score < 40:
		return LabelWeak
	case score < 70:
		return LabelMedium
	case score < 90:
		return LabelStrong
	default:
		return LabelVeryStrong
	}
}
