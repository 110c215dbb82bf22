// Package artext canonicalizes Arabic and mixed-script text for matching.
//
// Normalization is lossy on purpose: it folds letter variants that users
// interchange freely (hamza-bearing alefs, taa-marbuta, alef-maksura) so that
// a misspelled query still lands near the catalog spelling. Normalize is
// idempotent.
package artext

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes raw input: ASCII lower-casing, Arabic diacritic and
// tatweel stripping, letter-variant unification, Arabic-Indic digit
// conversion, punctuation stripping (digits, '.' and '%' survive) and
// whitespace collapsing.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		r = foldRune(r)
		switch {
		case r == -1:
			continue
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// foldRune maps a rune to its canonical form, or -1 to drop it.
func foldRune(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	case r >= 'ً' && r <= 'ٟ': // harakat, shadda, sukun...
		return -1
	case r == 'ٰ': // superscript alef
		return -1
	case r == 'ـ': // tatweel
		return -1
	case r == 'آ', r == 'أ', r == 'إ': // آ أ إ
		return 'ا' // ا
	case r == 'ؤ': // ؤ
		return 'و' // و
	case r == 'ئ', r == 'ى': // ئ ى
		return 'ي' // ي
	case r == 'ة': // ة
		return 'ه' // ه
	case r == 'ء': // ء
		return -1
	case r >= '٠' && r <= '٩': // ٠..٩
		return '0' + (r - '٠')
	case r >= '۰' && r <= '۹': // ۰..۹
		return '0' + (r - '۰')
	case r == '.' || r == '%':
		return r
	case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
		return r
	default:
		return -1
	}
}

// Tokens normalizes s and splits it on whitespace.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// morphSuffixes are plural and feminine markers stripped when generating
// match variants.
var morphSuffixes = []string{"ات", "ان", "ون", "ين", "ها", "ه", "ي"}

// definiteArticle is the prefix stripped so "الحديد" matches "حديد".
const definiteArticle = "ال"

// Variants returns the token itself plus stemmed forms: the definite article
// removed, trailing plural or feminine markers removed, and both. The token
// must already be normalized.
func Variants(token string) []string {
	seen := make(map[string]struct{}, 4)
	out := make([]string, 0, 4)
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	bases := []string{token}
	if r := []rune(token); len(r) >= 4 && strings.HasPrefix(token, definiteArticle) {
		bases = append(bases, string(r[2:]))
	}
	for _, base := range bases {
		add(base)
		runes := []rune(base)
		for _, suf := range morphSuffixes {
			sr := []rune(suf)
			if len(runes) >= len(sr)+2 && strings.HasSuffix(base, suf) {
				add(string(runes[:len(runes)-len(sr)]))
			}
		}
	}
	return out
}

// Stem returns the shortest variant of a normalized token.
func Stem(token string) string {
	best := token
	for _, v := range Variants(token) {
		if len([]rune(v)) < len([]rune(best)) {
			best = v
		}
	}
	return best
}

// IsNumeric reports whether a normalized token is a bare number.
func IsNumeric(token string) bool {
	if token == "" {
		return false
	}
	dot := false
	for _, r := range token {
		if r == '.' {
			if dot {
				return false
			}
			dot = true
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return token != "."
}
