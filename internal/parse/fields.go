package parse

import "strings"

// Bounds that separate plausible values from stray numbers (ad IDs, phone
// fragments, dates). Out-of-bounds matches are treated as absence.
const (
	maxRooms        = 10
	maxFloors       = 50
	minAreaM2       = 5
	maxAreaM2       = 1000
	minPriceUSD     = 50
	maxPriceUSD     = 10000
	minPriceUZS     = 100000
	uzsMagnitude    = 50000
	minDeposit      = 10
	maxDeposit      = 10000
)

// parseTriple recognizes the rooms/floor/total_floors shorthand ("2/5/9").
// All three values must pass bounds and floor <= total_floors, otherwise
// the shorthand is rejected as a whole and the labelled extractors take
// over field by field.
func parseTriple(text string) (rooms, floor, totalFloors int, ok bool) {
	m := triplePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, 0, false
	}
	r, _ := extractInt(m[1])
	f, _ := extractInt(m[2])
	tf, _ := extractInt(m[3])
	if r < 1 || r > maxRooms || f < 1 || f > maxFloors || tf < 1 || tf > maxFloors {
		return 0, 0, 0, false
	}
	if f > tf {
		return 0, 0, 0, false
	}
	return r, f, tf, true
}

func parseRooms(text string) *int {
	m := matchFirst(roomsPatterns, text)
	if m == nil {
		return nil
	}
	n, ok := extractInt(m[1])
	if !ok || n < 1 || n > maxRooms {
		return nil
	}
	return &n
}

func parseFloor(text string) *int {
	for _, p := range floorPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		// The bare "N этаж" form captures a trailing "н" to reject
		// "N этажный"; only that pattern is skipped, the rest still try.
		if len(m) > 2 && m[2] == "н" {
			continue
		}
		n, ok := extractInt(m[1])
		if !ok || n < 1 || n > maxFloors {
			return nil
		}
		return &n
	}
	return nil
}

func parseTotalFloors(text string) *int {
	m := matchFirst(totalFloorsPatterns, text)
	if m == nil {
		return nil
	}
	n, ok := extractInt(m[1])
	if !ok || n < 1 || n > maxFloors {
		return nil
	}
	return &n
}

func parseArea(text string) *float64 {
	m := matchFirst(areaPatterns, text)
	if m == nil {
		return nil
	}
	a, ok := extractFloat(m[1])
	if !ok || a <= minAreaM2 || a >= maxAreaM2 {
		return nil
	}
	return &a
}

// parsePrice returns the price and its currency. The currency comes from
// an explicit unit token when present; otherwise amounts above the UZS
// magnitude threshold are assumed to be soums. Per-currency plausibility
// bands reject stray numbers that matched a price pattern.
func parsePrice(text string) (*int, string) {
	for _, p := range pricePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		price, ok := extractInt(m[1])
		if !ok || price <= 0 {
			continue
		}

		currency := "usd"
		if len(m) > 2 && m[2] != "" {
			unit := strings.ToLower(m[2])
			if strings.Contains(unit, "сум") || strings.Contains(unit, "so'm") || strings.Contains(unit, "som") {
				currency = "uzs"
			}
		}
		if price > uzsMagnitude {
			currency = "uzs"
		}

		if currency == "usd" && price >= minPriceUSD && price <= maxPriceUSD {
			return &price, currency
		}
		if currency == "uzs" && price >= minPriceUZS {
			return &price, currency
		}
	}
	return nil, ""
}

// parseDeposit returns the deposit amount and the no-deposit flag. An
// explicit "без депозита" phrase short-circuits. The word "депозит" with no
// extractable amount yields a nil deposit without implying no-deposit.
func parseDeposit(text string) (*int, bool) {
	if noDepositPattern.MatchString(text) {
		return nil, true
	}
	for _, p := range depositPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		d, ok := extractInt(m[1])
		if ok && d >= minDeposit && d <= maxDeposit {
			return &d, false
		}
	}
	return nil, false
}

// parseCommission reports whether the ad charges an agent fee and the
// percentage when stated. No-commission phrases win over fee mentions.
func parseCommission(text string) (bool, *int) {
	for _, p := range noCommissionPatterns {
		if p.MatchString(text) {
			return false, nil
		}
	}
	for _, p := range commissionPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		var pct *int
		if len(m) > 1 && m[1] != "" {
			if n, ok := extractInt(m[1]); ok {
				pct = &n
			}
		}
		return true, pct
	}
	return false, nil
}

func parseCondition(text string) string {
	for _, p := range conditionPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		cond := strings.TrimSpace(m[1])
		if len([]rune(cond)) > 2 {
			return strings.ToLower(whitespaceRun.ReplaceAllString(cond, " "))
		}
	}
	return ""
}

func parseHouseType(text string) string {
	for _, p := range houseTypePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ToLower(strings.TrimSpace(m[1]))
		if strings.Contains(raw, "новостройка") || strings.Contains(raw, "novostroy") {
			return "новостройка"
		}
		if strings.Contains(raw, "вторичн") {
			return "вторичка"
		}
	}
	return ""
}

// parseAddress extracts the address and landmark lines. A residential
// complex ("ЖК ...") mention is folded into the address.
func parseAddress(text string) (address, landmark string) {
	if m := matchFirst(addressPatterns, text); m != nil {
		raw := strings.TrimSpace(m[1])
		if len([]rune(raw)) > 3 {
			address = raw
		}
	}
	if m := matchFirst(landmarkPatterns, text); m != nil {
		raw := strings.TrimSpace(m[1])
		if len([]rune(raw)) > 3 {
			landmark = raw
		}
	}
	if m := complexPattern.FindStringSubmatch(text); m != nil {
		name := strings.TrimSpace(m[1])
		switch {
		case address == "":
			address = "ЖК " + name
		case !strings.Contains(strings.ToLower(address), strings.ToLower(name)):
			// Fold the complex in unless the address line already named it.
			address = "ЖК " + name + ", " + address
		}
	}
	return address, landmark
}
