package normalize

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Collapse trims s and squeezes internal whitespace runs to one space.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Text converts an HTML fragment to plain text: tags are dropped, entities
// decoded, <br> treated as a space and whitespace collapsed. Input without
// markup is only collapsed.
func Text(markup string) string {
	if !strings.ContainsAny(markup, "<&") {
		return Collapse(markup)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return Collapse(markup)
	}
	doc.Find("br").ReplaceWithHtml(" ")
	return Collapse(doc.Find("body").Text())
}

// Fold lower-cases s and strips diacritics so "Tránsito" matches "transito".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Canonical upper-cases a tracking number and strips every character that
// is not an ASCII letter or digit.
func Canonical(number string) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range strings.ToUpper(number) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MaskName keeps the first letter of each word of a person's name and
// replaces the rest with '*': "Juan Perez" becomes "J*** P****".
func MaskName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		words[i] = string(r[0]) + strings.Repeat("*", len(r)-1)
	}
	return strings.Join(words, " ")
}

// First returns the first non-empty value.
func First(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
