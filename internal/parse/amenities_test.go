package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmenities(t *testing.T) {
	a := parseAmenities("Мебель, кондиционер, стиральная машина, холодильник, Wi-Fi, телевизор, балкон, парковка")
	assert.True(t, a.Furniture)
	assert.True(t, a.Conditioner)
	assert.True(t, a.WashingMachine)
	assert.True(t, a.Refrigerator)
	assert.True(t, a.Internet)
	assert.True(t, a.TV)
	assert.True(t, a.Balcony)
	assert.True(t, a.Parking)

	a = parseAmenities("Сдаю квартиру")
	assert.Equal(t, amenities{}, a)
}

func TestParseAmenities_Uzbek(t *testing.T) {
	a := parseAmenities("Mebel bor, konditsioner, kirmoshina")
	assert.True(t, a.Furniture)
	assert.True(t, a.Conditioner)
	assert.True(t, a.WashingMachine)
	assert.False(t, a.Refrigerator)
}

func TestParseTenantTypes(t *testing.T) {
	assert.Equal(t, []string{"family"}, parseTenantTypes("Только семье с загсом"))
	assert.Equal(t, []string{"girls"}, parseTenantTypes("Qizlar uchun"))
	assert.ElementsMatch(t, []string{"family", "girls"}, parseTenantTypes("Семье или девушкам"))
	assert.Nil(t, parseTenantTypes("Сдаю квартиру"))
}

func TestParseRules(t *testing.T) {
	pets, kids := parseRules("Можно с животными и с детьми")
	assert.True(t, pets)
	assert.True(t, kids)

	pets, kids = parseRules("Сдаю квартиру")
	assert.False(t, pets)
	assert.False(t, kids)
}
