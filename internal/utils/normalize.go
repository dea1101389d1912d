package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// TitleCase canonicalizes ingredient/tag names: lowercase everything, then
// capitalize the first letter of each word ("chua ngọt" -> "Chua Ngọt").
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

// FoldSearch lowers the string and strips diacritics so substring search is
// case- and accent-insensitive ("Phở Bò" -> "pho bo"). The folded form is
// persisted next to the display name and matched with plain LIKE.
func FoldSearch(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	// đ/Đ are standalone letters, not combining marks, and survive NFD
	folded = strings.NewReplacer("đ", "d", "Đ", "D").Replace(folded)
	return strings.ToLower(folded)
}
