package parse

import (
	"regexp"
	"strings"
)

// Technical tokens stripped out of the human-readable description: emoji
// decoration, phones, links, IDs, the triple shorthand, commission lines.
var descriptionJunk = []*regexp.Regexp{
	regexp.MustCompile(`#\S+`),
	regexp.MustCompile(`[⚫🟠🔴🔹🔸💮📍🎯🏡💸📐⏫🔼♦️📣☎️✏️📲🔑✉️👉🪧☑️🔎🏷💵📱🔵📝🔗✅🎖💰⛳️👤🔥💎🏢]`),
	regexp.MustCompile(`\+998[\d \-]+`),
	regexp.MustCompile(`t\.me/\S+`),
	regexp.MustCompile(`https?://\S+`),
	regexp.MustCompile(`@\S+`),
	regexp.MustCompile(`(?i)ID\s*[:\-]?\s*\d+`),
	regexp.MustCompile(`\d+/\d+/\d+`),
	regexp.MustCompile(`(?i)комисс\w*\s*\d*\s*%?[^\n]*`),
	regexp.MustCompile(`(?i)maklerskiy[^\n]*`),
	regexp.MustCompile(`(?i)риелтор[^\n]*`),
}

var (
	numericLinePattern = regexp.MustCompile(`^[\d \-+().,:;/\\]+$`)
	labelLinePattern   = regexp.MustCompile(`^[А-Яа-яЁё ]+\s*[:\-]\s*\d+`)
)

const minDescriptionLen = 20

// CleanDescription produces a free-text description with technical tokens
// removed. Lines that are pure numbers, too short, or "Label: 123" forms
// are dropped. Descriptions shorter than the minimum are discarded
// entirely rather than kept as noise.
func CleanDescription(text string) string {
	if text == "" {
		return ""
	}

	result := text
	for _, p := range descriptionJunk {
		result = p.ReplaceAllString(result, " ")
	}

	var kept []string
	for _, line := range strings.Split(result, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if numericLinePattern.MatchString(line) {
			continue
		}
		if len([]rune(line)) < 10 {
			continue
		}
		if labelLinePattern.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}

	out := strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.Join(kept, " "), " "))
	if len([]rune(out)) < minDescriptionLen {
		return ""
	}
	return out
}
