package parse

import "regexp"

// Phone extraction runs against the ORIGINAL raw text, not the normalized
// form: normalization can merge separators and break digit adjacency.

var (
	// +998 90 123-45-67, 998(90)1234567 and similar
	fullPhonePattern = regexp.MustCompile(`\+?998\s*[\-()]?\s*(\d{2})\s*[\-()]?\s*(\d{3})\s*[\-()]?\s*(\d{2})\s*[\-()]?\s*(\d{2})`)
	// bare local number: 90 123 45 67
	shortPhonePattern = regexp.MustCompile(`\b(\d{2})[\s\-]?(\d{3})[\s\-]?(\d{2})[\s\-]?(\d{2})\b`)
)

// ExtractPhones finds phone numbers, normalizes them to +998XXXXXXXXX and
// deduplicates preserving first-seen order. Local nine-digit numbers
// without a country prefix are accepted only when the leading digit looks
// like an Uzbek mobile or city code (7, 8, 9), and only when no full
// number was found at all.
func ExtractPhones(text string) []string {
	if text == "" {
		return nil
	}

	var phones []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			phones = append(phones, p)
		}
	}

	for _, m := range fullPhonePattern.FindAllStringSubmatch(text, -1) {
		add("+998" + m[1] + m[2] + m[3] + m[4])
	}

	if len(phones) == 0 {
		for _, m := range shortPhonePattern.FindAllStringSubmatch(text, -1) {
			digits := m[1] + m[2] + m[3] + m[4]
			switch digits[0] {
			case '7', '8', '9':
				add("+998" + digits)
			}
		}
	}

	return phones
}
