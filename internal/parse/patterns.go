package parse

import "regexp"

// Pattern chains for each field, tried in order with early exit on the
// first in-bounds match. The ads mix Russian and Uzbek labels, emoji
// bullets, and bare shorthand, so every chain carries fallbacks.

// Compact rooms/floor/total_floors notation: "2/5/9".
var triplePattern = regexp.MustCompile(`(\d+)\s*/\s*(\d+)\s*/\s*(\d+)`)

var roomsPatterns = []*regexp.Regexp{
	// "Комнат: 2", "Комнат-2", "🏡 Комнат: 1"
	regexp.MustCompile(`(?i)комнат[аы]?\s*[:\-]\s*(\d+)`),
	// "Кол.Комнат:2", "Кол-во комнат: 1"
	regexp.MustCompile(`(?i)кол[.\-]?\s*(?:во\s+)?комнат\s*[:\-]\s*(\d+)`),
	// "2 комнатная", "1-комнатная", "3 комнатка"
	regexp.MustCompile(`(?i)(\d+)\s*-?\s*комнат(?:ная|ка)`),
	// Uzbek: "Xonalar soni: 2", "2 XONA"
	regexp.MustCompile(`(?i)xonalar?\s*(?:soni)?\s*[:\-]?\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*xona`),
	// "🔹Комнат: 2" and other emoji bullet forms
	regexp.MustCompile(`(?i)[🔹🔸💮]\s*комнат[аы]?\s*[:\-]?\s*(\d+)`),
}

// этаж/qavat; the optional captured "н" rejects "этажный"/"этажность".
var floorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)этаж\s*[:\-]?\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*этаж(н?)`),
	regexp.MustCompile(`(?i)qavat\s*[:\-]?\s*(\d+)`),
}

var totalFloorsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)этажност[ьи]\s*[:\-]?\s*(\d+)`),
	regexp.MustCompile(`(?i)этажей\s*(?:в\s*доме)?\s*[:\-]?\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s*-?\s*этажн(?:ый|ая|ое|ость)`),
}

var areaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:общая\s+)?площад[ьия]\s*[:\-]?\s*(\d+(?:[.,]\d+)?)`),
	regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:кв\.?\s*м(?:етр)?|м[²2])`),
}

// Capture group 2 is the currency unit token, when present.
var pricePatterns = []*regexp.Regexp{
	// "Цена: 700", "💸 Цена: 600$", "Narx: 350 $"
	regexp.MustCompile(`(?i)(?:цена|narx)\s*[:\-]?\s*(\d[\d ]*)\s*(\$|y\.?e\.?|уе|долл|сум|so'?m)?`),
	// "700$", "600 $", "500y.e"
	regexp.MustCompile(`(?i)(\d{3,})\s*(\$|y\.?e\.?|уе|долл)`),
	// "350$+300$ Депозит" — first amount is the price
	regexp.MustCompile(`(\d{3,})\s*(\$)\s*\+`),
}

var depositPatterns = []*regexp.Regexp{
	// "+300$ Депозит"
	regexp.MustCompile(`(?i)\+\s*(\d+)\s*\$?\s*депозит`),
	// "Депозит: 250$", "|Депозит 250$|"
	regexp.MustCompile(`(?i)депозит\s*[:\-]?\s*(\d+)`),
}

var noDepositPattern = regexp.MustCompile(`(?i)без\s+депозит`)

var commissionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)комисс?ионн?ы?е?\s*(\d+)?\s*%?`),
	regexp.MustCompile(`(?i)maklerskiy\s*(\d+)?\s*%?`),
	regexp.MustCompile(`(?i)риелтор\s*услуги?\s*(\d+)?\s*%?`),
	regexp.MustCompile(`\((\d+)\s*%\s*\)`),
}

var noCommissionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)без\s+(?:маклер|комисс|посредник)`),
	regexp.MustCompile(`(?i)bezmakler`),
	regexp.MustCompile(`(?i)не\s+для\s+риелтор`),
}

var conditionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)состояние\s*[:\-]?\s*([А-ЯЁа-яё ]+)`),
	regexp.MustCompile(`(?i)(евро\s*ремонт|новый\s*ремонт|хороший\s*ремонт|классический\s*ремонт)`),
	regexp.MustCompile(`(?i)(evro\s*ta'?mir)`),
}

var houseTypePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)тип\s*дома\s*[:\-]?\s*([А-ЯЁа-яё ]+)`),
	regexp.MustCompile(`(?i)(новостройка|вторичн\w*(?:\s*фонд)?)`),
}

var addressPatterns = []*regexp.Regexp{
	// "🎯 Адрес: ЖК Узмахал", "Manzil: QORASUV-6"
	regexp.MustCompile(`(?i)(?:адрес|manzil)\s*[:\-]?\s*([^\n]+)`),
}

var landmarkPatterns = []*regexp.Regexp{
	// "Ор-р Точка вкуса", "Ориентир: Метро минор"
	regexp.MustCompile(`(?i)(?:ор-р|ориентир|mo'ljal)\s*[:\-]?\s*([^\n]+)`),
}

// Residential complex name, folded into the address.
var complexPattern = regexp.MustCompile(`(?i)(?:жк|jk)\s*["']?([А-ЯЁа-яёA-Za-z \-']+)`)

var metroPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)метро\s+([А-ЯЁа-яёA-Za-z ']+?)(?:\s*[,\n🚊📍]|$)`),
	regexp.MustCompile(`(?i)metro\s+([A-Za-z ']+?)(?:\s*[,\n🚊]|$)`),
}

var (
	// "Мирзо-Улугбекский район", "Район: Чиланзарский", "... TUMANI"
	districtMentionPattern = regexp.MustCompile(`(?i)([А-ЯЁа-яё\-]+(?:ский|ий))\s+район`)
	districtLabelPattern   = regexp.MustCompile(`(?i)район\s*[:\-]\s*([А-ЯЁа-яё \-]+?)(?:\s*[,\n📍🎯🏢]|$)`)
	districtUzbekPattern   = regexp.MustCompile(`(?i)([A-Za-z' ]+)\s+tumani`)
)

var hashtagPattern = regexp.MustCompile(`#([А-ЯЁа-яёA-Za-z0-9_]+)`)
