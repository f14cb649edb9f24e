package parse

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Static alias tables mapping lower-cased spellings (Russian, Uzbek, Latin
// transliterations, hashtag forms) to canonical Tashkent names. Ordered
// slices, not maps: lookup is substring-based both ways, so iteration
// order decides ties and must be deterministic. Downstream normalization
// against the place registry is the storage side's job; here an unmatched
// but plausible candidate degrades to a title-cased string.

type alias struct {
	raw       string
	canonical string
}

var districtAliases = []alias{
	{"мирзо улугбек", "Мирзо-Улугбекский"},
	{"мирзо-улугбек", "Мирзо-Улугбекский"},
	{"мирзоулугбек", "Мирзо-Улугбекский"},
	{"мирзо улугбекский", "Мирзо-Улугбекский"},
	{"mirzo ulug'bek", "Мирзо-Улугбекский"},
	{"ц-1", "Мирзо-Улугбекский"},
	{"юнусабад", "Юнусабадский"},
	{"юнус абад", "Юнусабадский"},
	{"юнусабадский", "Юнусабадский"},
	{"yunusabad", "Юнусабадский"},
	{"чиланзар", "Чиланзарский"},
	{"чиланзарский", "Чиланзарский"},
	{"chilanzar", "Чиланзарский"},
	{"мирабад", "Мирабадский"},
	{"мирабадский", "Мирабадский"},
	{"mirabad", "Мирабадский"},
	{"яккасарай", "Яккасарайский"},
	{"яккасарайский", "Яккасарайский"},
	{"yakkasaroy", "Яккасарайский"},
	{"сергели", "Сергелийский"},
	{"сергелийский", "Сергелийский"},
	{"sergeli", "Сергелийский"},
	{"шайхантахур", "Шайхантахурский"},
	{"шайхонтогур", "Шайхантахурский"},
	{"шайхантахурский", "Шайхантахурский"},
	{"shayxontohur", "Шайхантахурский"},
	{"алмазар", "Алмазарский"},
	{"алмазарский", "Алмазарский"},
	{"olmazar", "Алмазарский"},
	{"бектемир", "Бектемирский"},
	{"бектемирский", "Бектемирский"},
	{"bektemir", "Бектемирский"},
	{"яшнабад", "Яшнабадский"},
	{"яшнобад", "Яшнабадский"},
	{"яшнабадский", "Яшнабадский"},
	{"yashnabad", "Яшнабадский"},
	{"учтепа", "Учтепинский"},
	{"учтепинский", "Учтепинский"},
	{"uchtepa", "Учтепинский"},
}

var metroAliases = []alias{
	{"минор", "Минор"},
	{"minor", "Минор"},
	{"ойбек", "Ойбек"},
	{"oybek", "Ойбек"},
	{"пушкин", "Пушкинская"},
	{"космонавтов", "Космонавтлар"},
	{"хамид олимжон", "Хамида Олимжона"},
	{"буюк ипак йули", "Буюк Ипак Йўли"},
	{"buyuk ipak yo'li", "Буюк Ипак Йўли"},
	{"милий бог", "Миллий Боғ"},
	{"milliy bog", "Миллий Боғ"},
	{"тузель", "Тузел"},
	{"tuzel", "Тузел"},
	{"сергели", "Сергели"},
	{"sergeli", "Сергели"},
	{"чкалов", "Чкалов"},
}

var landmarks = []string{
	"it park", "ит парк",
	"tata", "тата",
	"мегапланет", "megaplanet",
	"hi-tech", "хай-тек",
	"паркентский", "parkent",
	"ассалом сохил", "assalom sohil",
	"akay city", "акай сити",
	"imperial club", "империал клуб",
	"mirabad avenue",
	"prestige gardens",
	"solaris", "солярис",
}

// Hashtag vocabularies that look like locations but are not: room counts,
// tenant preferences, currency tags. Filtered before the alias lookup.
var nonDistrictTagWords = []string{"комнат", "долл", "oila", "qiz", "boll"}

var (
	titleCaser       = cases.Title(language.Russian)
	aliasJunkPattern = regexp.MustCompile(`[#_\-]`)
)

// lookupDistrict resolves a candidate strictly through the alias table.
func lookupDistrict(raw string) string {
	clean := aliasJunkPattern.ReplaceAllString(strings.ToLower(raw), " ")
	clean = strings.TrimSpace(whitespaceRun.ReplaceAllString(clean, " "))
	if clean == "" {
		return ""
	}
	for _, a := range districtAliases {
		if strings.Contains(clean, a.raw) || strings.Contains(a.raw, clean) {
			return a.canonical
		}
	}
	return ""
}

// normalizeDistrict maps a raw district candidate to its canonical name,
// or title-cases it when the alias table has no entry but the candidate is
// long enough to be a plausible place name.
func normalizeDistrict(raw string) string {
	if raw == "" {
		return ""
	}
	if d := lookupDistrict(raw); d != "" {
		return d
	}
	clean := aliasJunkPattern.ReplaceAllString(strings.ToLower(raw), " ")
	clean = strings.TrimSpace(whitespaceRun.ReplaceAllString(clean, " "))
	if len([]rune(clean)) > 3 {
		return titleCaser.String(clean)
	}
	return ""
}

func normalizeMetro(raw string) string {
	if raw == "" {
		return ""
	}
	clean := strings.TrimSpace(strings.ToLower(raw))
	for _, a := range metroAliases {
		if strings.Contains(clean, a.raw) {
			return a.canonical
		}
	}
	if len([]rune(clean)) > 2 {
		return titleCaser.String(clean)
	}
	return ""
}

// parseDistrict tries, in order: explicit "...ский район" mention, the
// labelled "Район: ..." form, location-looking hashtags, the Uzbek
// "... tumani" form, and finally a bare district name anywhere in the
// text ("Цена: 600$, Чиланзар").
func parseDistrict(text string, hashtags []string) string {
	if m := districtMentionPattern.FindStringSubmatch(text); m != nil {
		if d := normalizeDistrict(m[1]); d != "" {
			return d
		}
	}
	if m := districtLabelPattern.FindStringSubmatch(text); m != nil {
		if d := normalizeDistrict(m[1]); d != "" {
			return d
		}
	}
	// Hashtags resolve strictly through the alias table: tags carry too
	// much unrelated vocabulary for the title-case fallback.
	for _, tag := range hashtags {
		lower := strings.ReplaceAll(strings.ToLower(tag), "_", " ")
		if containsAny(lower, nonDistrictTagWords) {
			continue
		}
		if d := lookupDistrict(tag); d != "" {
			return d
		}
	}
	if m := districtUzbekPattern.FindStringSubmatch(text); m != nil {
		if d := normalizeDistrict(m[1]); d != "" {
			return d
		}
	}
	lower := strings.ToLower(text)
	for _, a := range districtAliases {
		if strings.Contains(lower, a.raw) {
			return a.canonical
		}
	}
	return ""
}

func parseMetro(text string) string {
	m := matchFirst(metroPatterns, text)
	if m == nil {
		return ""
	}
	return normalizeMetro(m[1])
}

// parseLandmark checks the curated landmark list before falling back to
// the labelled landmark line found by parseAddress.
func parseLandmark(text string) string {
	lower := strings.ToLower(text)
	for _, lm := range landmarks {
		if strings.Contains(lower, lm) {
			return titleCaser.String(lm)
		}
	}
	return ""
}
