package timeconv

import "strings"

// MillisThreshold is the magnitude at and above which a numeric input is
// read as milliseconds. Equivalent to 13 or more significant digits.
const MillisThreshold int64 = 1_000_000_000_000

const millisDigits = 13

// Classify decides whether raw is a seconds timestamp, a milliseconds
// timestamp, or a formatted datetime. Surrounding whitespace is ignored.
//
// Classify only looks at the character classes present; layout and range
// problems are left to Parse.
func Classify(raw string) (InputKind, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &ClassificationError{Input: raw, Reason: "empty input"}
	}

	signed := s[0] == '+' || s[0] == '-'
	body := s
	if signed {
		body = s[1:]
	}

	var digits, separators int
	for i := 0; i < len(body); i++ {
		switch c := body[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '/' || c == ':' || c == ' ':
			separators++
		default:
			return 0, &ClassificationError{Input: raw, Reason: "unexpected character " + quoteByte(c)}
		}
	}

	if separators == 0 {
		if digits == 0 {
			return 0, &ClassificationError{Input: raw, Reason: "sign without digits"}
		}
		if significantDigits(body) >= millisDigits {
			return UnixMillis, nil
		}
		return UnixSeconds, nil
	}

	if signed {
		return 0, &ClassificationError{Input: raw, Reason: "sign mixed with date separators"}
	}
	if !strings.ContainsAny(body, "/:") {
		return 0, &ClassificationError{Input: raw, Reason: "digits separated by spaces"}
	}
	return FormattedDateTime, nil
}

// significantDigits counts digits after stripping leading zeros, so it
// compares against MillisThreshold without risking integer overflow.
func significantDigits(digits string) int {
	return len(strings.TrimLeft(digits, "0"))
}

func quoteByte(c byte) string {
	if c < 0x20 || c >= 0x7f {
		return "(non-printable or non-ASCII)"
	}
	return "'" + string(c) + "'"
}
