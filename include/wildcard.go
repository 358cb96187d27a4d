package include

import "regexp"

var wildcardRegex = regexp.MustCompile(`^.*(\*|\?|\[!?.+]).*$`)

// IsWildcard reports whether path contains glob metacharacters.
// A lone "[" or "]" and the empty class "[]" are literal.
func IsWildcard(path string) bool {
	return wildcardRegex.MatchString(path)
}
