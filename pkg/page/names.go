package page

import (
	"strings"
	"unicode"
)

// snakeCase derives an accessor base name from a visible label: lower-cased,
// with characters that are neither letters, digits, whitespace, nor dashes
// removed, and runs of whitespace/dashes collapsed to single underscores.
//
//	"Click Me For Fun!" -> "click_me_for_fun"
func snakeCase(label string) string {
	var b strings.Builder
	pendingSep := false

	for _, r := range strings.ToLower(label) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			pendingSep = true
		}
	}

	return b.String()
}

// exportedName converts a snake_case accessor name to the exported Go method
// name it would forward to ("execute_script" -> "ExecuteScript").
func exportedName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}
