package strutil

import (
	"github.com/indigo-web/utils/strcomp"
)

// IsSpace reports whether the byte is one of the whitespace characters the start-line
// and header parsers split on.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		if !IsSpace(str[i]) {
			return str[i:]
		}
	}

	return ""
}

func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		if !IsSpace(str[i-1]) {
			return str[:i]
		}
	}

	return ""
}

func StripWS(str string) string {
	return RStripWS(LStripWS(str))
}

// SplitFields splits the string by runs of whitespace into at most n fields. Leading
// whitespace is ignored. The last field holds the remainder of the string verbatim
// (except its leading whitespace), so internal whitespace is preserved there. Non-positive
// n means no limit.
func SplitFields(str string, n int) (fields []string) {
	str = LStripWS(str)

	for len(str) > 0 {
		if n > 0 && len(fields) == n-1 {
			return append(fields, str)
		}

		end := 0
		for end < len(str) && !IsSpace(str[end]) {
			end++
		}

		fields = append(fields, str[:end])
		str = LStripWS(str[end:])
	}

	return fields
}

// LastToken returns the last comma-separated token of the value, stripped of whitespace.
func LastToken(value string) string {
	for i := len(value) - 1; i >= 0; i-- {
		if value[i] == ',' {
			return StripWS(value[i+1:])
		}
	}

	return StripWS(value)
}

// CmpFold compares two ASCII strings case-insensitively.
func CmpFold(a, b string) bool {
	return strcomp.EqualFold(a, b)
}
