package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// ContainsName reports whether the normalized form of name contains the
// normalized form of target. Used to locate section headings by their
// contained text instead of exact markup.
func ContainsName(name, target string) bool {
	return strings.Contains(NormalizeName(name), NormalizeName(target))
}

// CutName splits text around the first occurrence of sep and trims
// both halves. Mirrors strings.Cut but for loosely formatted labels
// like "Champions Tour – 1st".
func CutName(text, sep string) (before, after string, found bool) {
	before, after, found = strings.Cut(text, sep)
	return strings.TrimSpace(before), strings.TrimSpace(after), found
}
