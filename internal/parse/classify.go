package parse

import (
	"regexp"
	"strings"

	"estate_ingest/internal/domain"
)

// Relevance keywords that gate the whole pipeline. Russian and Uzbek,
// stems rather than full words to survive inflection.
var realEstateKeywords = []string{
	"квартир", "комнат", "аренда", "сдается", "сдаётся", "сдам",
	"этаж", "депозит", "комисс", "риелтор", "маклер",
	"xona", "ijara", "kvartira", "narx", "maklerskiy",
}

var realEstateTagWords = []string{"аренда", "квартира", "rent"}

var hardCurrencyPricePattern = regexp.MustCompile(`\d{2,4}\s*\$`)

// IsRealEstate decides whether the text is a real-estate ad at all. When
// it returns false the pipeline stops and the output carries no fields.
func IsRealEstate(text string, hashtags []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	if containsAny(lower, realEstateKeywords) {
		return true
	}
	tags := strings.ToLower(strings.Join(hashtags, " "))
	if containsAny(tags, realEstateTagWords) {
		return true
	}
	if triplePattern.MatchString(text) {
		return true
	}
	return hardCurrencyPricePattern.MatchString(lower)
}

var (
	wantedRentWords = []string{"сниму", "ищу квартиру", "ищу комнату", "нужна квартира"}
	dailyWords      = []string{"посуточно", "сутки", "sutka"}
	saleWords       = []string{"продам", "продаю", "продажа", "sotiladi"}
	longRentWords   = []string{"сдам", "сдаю", "сдается", "сдаётся", "аренда", "ijara", "ijaraga"}
	rentCueWords    = []string{"депозит", "deposit", "комисс", "маклер", "риелтор", "maklerskiy"}
)

// DealType classifies the deal by ordered precedence: wanted phrasing,
// daily phrasing, sale phrasing, explicit long-rent phrasing, then
// deposit/commission/agent cues which only make sense for long rents.
// With no cue at all the result is unknown, which downstream turns into a
// needs_review flag.
func DealType(text string, hashtags []string) domain.DealType {
	lower := strings.ToLower(text)
	tags := strings.ToLower(strings.Join(hashtags, " "))

	if containsAny(lower, wantedRentWords) {
		return domain.DealWantedRent
	}
	if strings.Contains(lower, "куплю") {
		return domain.DealWantedBuy
	}
	if containsAny(lower, dailyWords) {
		return domain.DealRentDaily
	}
	if containsAny(lower, saleWords) || strings.Contains(tags, "продажа") {
		return domain.DealSale
	}
	if containsAny(lower, longRentWords) || strings.Contains(tags, "аренда") {
		return domain.DealRentLong
	}
	if containsAny(lower, rentCueWords) {
		return domain.DealRentLong
	}
	return domain.DealUnknown
}

var (
	// "комнату"/"комната" as the object itself, not "2-комнатная квартира"
	roomWordPattern   = regexp.MustCompile(`(?i)комнат[уа]([^а-яё]|$)`)
	nRoomsGuard       = regexp.MustCompile(`(?i)\d\s*-?\s*комнат`)
	housePattern      = regexp.MustCompile(`(?i)котт?едж|частный\s+дом|hovli`)
	bareHousePattern  = regexp.MustCompile(`(?i)(^|[^а-яёa-z])дом([^а-яёa-z]|$)`)
	houseLabelGuard   = regexp.MustCompile(`(?i)тип\s+дома|в\s+доме|этажей\s+в\s+доме`)
	landWords         = []string{"участок", "соток", "yer"}
	commercialWords   = []string{"офис", "коммерч"}
)

// ObjectType classifies the property by ordered precedence with guards
// against label text ("тип дома") and room-count phrasing.
func ObjectType(text string) domain.ObjectType {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "студи") || strings.Contains(lower, "studio") {
		return domain.ObjectStudio
	}
	if roomWordPattern.MatchString(lower) && !nRoomsGuard.MatchString(lower) {
		return domain.ObjectRoom
	}
	if housePattern.MatchString(lower) {
		return domain.ObjectHouse
	}
	if bareHousePattern.MatchString(lower) && !houseLabelGuard.MatchString(lower) {
		return domain.ObjectHouse
	}
	if containsAny(lower, landWords) {
		return domain.ObjectLand
	}
	if containsAny(lower, commercialWords) {
		return domain.ObjectCommercial
	}
	return domain.ObjectFlat
}

// pricePeriod is derived from the deal type rather than extracted.
func pricePeriod(deal domain.DealType) domain.PricePeriod {
	switch deal {
	case domain.DealRentDaily:
		return domain.PeriodDay
	case domain.DealSale, domain.DealWantedBuy:
		return domain.PeriodTotal
	default:
		return domain.PeriodMonth
	}
}
