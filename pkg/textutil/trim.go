// Package textutil holds the byte-level helpers used to classify input lines.
package textutil

// IsSpace reports whether c is one of the ASCII whitespace bytes:
// space, tab, newline, carriage return, form feed or vertical tab.
// Unicode spaces such as U+00A0 are content.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// Trim returns the sub-slice of b with leading and trailing whitespace
// removed. The interior is left untouched. An empty or all-whitespace
// input yields an empty slice.
func Trim(b []byte) []byte {
	start := 0
	for start < len(b) && IsSpace(b[start]) {
		start++
	}
	end := len(b)
	for end > start && IsSpace(b[end-1]) {
		end--
	}
	return b[start:end]
}

// IsBlank reports whether b is empty after trimming.
func IsBlank(b []byte) bool {
	return len(Trim(b)) == 0
}
