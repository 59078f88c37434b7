// Package slug derives URL-safe lookup keys from localized names. Collection
// and category routes accept either an id or a slugged name, so the same
// normalization must run on both sides of the comparison.
package slug

import (
	"regexp"
	"strings"
)

// Arabic combining diacritics (tashkeel), U+064B through U+0652.
var tashkeel = regexp.MustCompile(`[\x{064B}-\x{0652}]`)

var whitespace = regexp.MustCompile(`\s+`)

// letterFolds unifies Arabic letter variants so that spelling differences in
// hamza carriers and final forms do not break matching.
var letterFolds = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"آ", "ا",
	"ى", "ي",
	"ؤ", "و",
	"ئ", "ي",
	"ة", "ه",
)

// NormalizeArabic strips tashkeel and folds letter variants. Non-Arabic text
// passes through unchanged.
func NormalizeArabic(s string) string {
	return letterFolds.Replace(tashkeel.ReplaceAllString(s, ""))
}

// Make builds a matching slug: normalize, collapse whitespace runs to single
// hyphens, collapse repeated hyphens, trim edge hyphens, lowercase.
// Make is idempotent: Make(Make(x)) == Make(x).
func Make(s string) string {
	out := NormalizeArabic(strings.TrimSpace(s))
	out = whitespace.ReplaceAllString(out, "-")
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	out = strings.Trim(out, "-")
	return strings.ToLower(out)
}
