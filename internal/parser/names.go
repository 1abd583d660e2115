package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToGoName склеивает части snake_case, kebab-case и слова через пробел в CamelCase.
// Регистр внутри частей сохраняется: APP_ENV -> APPENV.
func ToGoName(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})

	var b strings.Builder
	b.Grow(len(s))
	for _, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}
	return b.String()
}
