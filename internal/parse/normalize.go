package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	spaceRun      = regexp.MustCompile(`[ \t\r\x{00a0}]+`)
	newlineRun    = regexp.MustCompile(` ?\n[ \n]*`)
	nonDigit      = regexp.MustCompile(`\D`)
	floatToken    = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// Normalize canonicalizes raw ad text for pattern matching: non-breaking
// spaces become plain spaces, en/em dashes become "-", horizontal
// whitespace runs collapse to one space and blank-line runs to a single
// newline. Line structure survives because several extractors anchor on
// it. Total function, empty in means empty out.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	t := strings.ReplaceAll(text, "–", "-")
	t = strings.ReplaceAll(t, "—", "-")
	t = spaceRun.ReplaceAllString(t, " ")
	t = newlineRun.ReplaceAllString(t, "\n")
	return strings.TrimSpace(t)
}

// extractInt pulls an integer out of a captured token, tolerating digit
// group separators ("1 200", "1-200"). Returns 0, false when no digits.
func extractInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	digits := nonDigit.ReplaceAllString(s, "")
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// extractFloat pulls a float out of a captured token, accepting either a
// decimal comma or dot.
func extractFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	token := floatToken.FindString(s)
	if token == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// matchFirst returns the submatches of the first pattern in the chain that
// matches, or nil. Chains are ordered: earlier patterns are the stricter
// labelled forms, later ones the language/format fallbacks.
func matchFirst(patterns []*regexp.Regexp, text string) []string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m
		}
	}
	return nil
}

// containsAny reports whether any needle occurs in haystack. Callers pass
// lower-cased text.
func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
