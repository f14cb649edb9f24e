// Package parse turns free-form classified-ad text (Russian/Uzbek, emoji
// decoration, shorthand) into a typed listing record. Everything here is
// pure computation over the input: no I/O, no shared state, safe to call
// from any number of goroutines. An extractor that finds nothing leaves
// its field empty; nothing in this package returns an error.
package parse

import (
	"strings"

	"estate_ingest/internal/domain"
)

// ExtractHashtags pulls hashtag bodies out of the text, used when the
// listener did not supply them.
func ExtractHashtags(text string) []string {
	ms := hashtagPattern.FindAllStringSubmatch(text, -1)
	if ms == nil {
		return nil
	}
	tags := make([]string, 0, len(ms))
	for _, m := range ms {
		tags = append(tags, m[1])
	}
	return tags
}

// Parse runs the whole extraction pipeline over one ad. The relevance
// classifier gates everything: a non-real-estate text yields a listing
// with only IsRealEstate=false set. Phones are extracted from the raw
// text, all other matching runs on the normalized form.
func Parse(rawText string, hashtags []string) domain.Listing {
	if strings.TrimSpace(rawText) == "" {
		return domain.Listing{IsRealEstate: false}
	}
	if hashtags == nil {
		hashtags = ExtractHashtags(rawText)
	}

	text := Normalize(rawText)
	if !IsRealEstate(text, hashtags) {
		return domain.Listing{IsRealEstate: false}
	}

	l := domain.Listing{IsRealEstate: true}

	// Triple shorthand first; labelled extraction fills whatever the
	// shorthand did not provide, field by field. First found wins.
	if rooms, floor, totalFloors, ok := parseTriple(text); ok {
		l.Rooms, l.Floor, l.TotalFloors = &rooms, &floor, &totalFloors
	}
	if l.Rooms == nil {
		l.Rooms = parseRooms(text)
	}
	if l.Floor == nil {
		l.Floor = parseFloor(text)
	}
	if l.TotalFloors == nil {
		l.TotalFloors = parseTotalFloors(text)
	}

	l.AreaM2 = parseArea(text)

	price, currency := parsePrice(text)
	l.Price = price
	l.Currency = domain.Currency(currency)

	l.Deposit, l.NoDeposit = parseDeposit(text)
	l.HasCommission, l.CommissionPct = parseCommission(text)

	l.DistrictRaw = parseDistrict(text, hashtags)
	l.MetroRaw = parseMetro(text)
	l.AddressRaw, l.Landmark = parseAddress(text)
	if l.Landmark == "" {
		l.Landmark = parseLandmark(text)
	}

	l.Condition = parseCondition(text)
	l.HouseType = parseHouseType(text)

	a := parseAmenities(text)
	l.HasFurniture = a.Furniture
	l.HasConditioner = a.Conditioner
	l.HasWashingMachine = a.WashingMachine
	l.HasRefrigerator = a.Refrigerator
	l.HasInternet = a.Internet
	l.HasTV = a.TV
	l.HasBalcony = a.Balcony
	l.HasParking = a.Parking

	l.TenantTypes = parseTenantTypes(text)
	l.PetsAllowed, l.KidsAllowed = parseRules(text)

	l.Phones = ExtractPhones(rawText)

	l.DealType = DealType(text, hashtags)
	l.ObjectType = ObjectType(text)
	l.PricePeriod = pricePeriod(l.DealType)

	l.DescriptionClean = CleanDescription(text)

	Score(&l)
	return l
}
