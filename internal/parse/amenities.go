package parse

import "regexp"

// Amenity and tenant-rule extraction is plain keyword presence. Each group
// is checked independently: one amenity never suppresses another.

type keywordGroup struct {
	name     string
	patterns []*regexp.Regexp
}

func group(name string, words ...string) keywordGroup {
	ps := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		ps[i] = regexp.MustCompile(`(?i)` + w)
	}
	return keywordGroup{name: name, patterns: ps}
}

func (g keywordGroup) matches(text string) bool {
	for _, p := range g.patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

var amenityGroups = []keywordGroup{
	group("furniture", `мебел[ьия]`, `меблирован`, `с\s+мебелью`, `mebel`, `диван`, `кровать`, `divan`),
	group("conditioner", `кондиц`, `сплит`, `konditsioner`, `konditsoner`),
	group("washing_machine", `стирал`, `стир\.?\s*маш`, `кирмошина`, `kirmoshina`),
	group("refrigerator", `холодильник`, `muzlatgich`),
	group("internet", `интернет`, `wi-?fi`),
	group("tv", `телевизор`, `televizor`),
	group("balcony", `балкон`, `лоджия`, `balkon`),
	group("parking", `парковк`, `машиноместо`, `гараж`, `avtoturargoh`),
}

var tenantGroups = []keywordGroup{
	group("family", `семь[яе]`, `oila`, `загс`),
	group("girls", `девушк`, `qizlar`),
	group("guys", `парн`, `болларга`, `bollar`),
	group("single", `одиноч`, `один\s+парень`, `один\s+человек`),
}

var (
	petsGroup = group("pets", `можно\s+с\s+животн`, `с\s+животными`, `hayvon`)
	kidsGroup = group("kids", `можно\s+с\s+детьми`, `с\s+детьми`, `bolali`)
)

type amenities struct {
	Furniture      bool
	Conditioner    bool
	WashingMachine bool
	Refrigerator   bool
	Internet       bool
	TV             bool
	Balcony        bool
	Parking        bool
}

func parseAmenities(text string) amenities {
	var a amenities
	flags := [...]*bool{
		&a.Furniture, &a.Conditioner, &a.WashingMachine, &a.Refrigerator,
		&a.Internet, &a.TV, &a.Balcony, &a.Parking,
	}
	for i, g := range amenityGroups {
		*flags[i] = g.matches(text)
	}
	return a
}

func parseTenantTypes(text string) []string {
	var types []string
	for _, g := range tenantGroups {
		if g.matches(text) {
			types = append(types, g.name)
		}
	}
	return types
}

func parseRules(text string) (pets, kids bool) {
	return petsGroup.matches(text), kidsGroup.matches(text)
}
