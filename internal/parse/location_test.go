package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDistrict(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		hashtags []string
		want     string
	}{
		{"sky mention", "Мирзо-Улугбекский район, рядом метро", nil, "Мирзо-Улугбекский"},
		{"labelled", "Район: Чиланзар", nil, "Чиланзарский"},
		{"labelled canonical", "Район: Чиланзарский", nil, "Чиланзарский"},
		{"hashtag", "Сдаю квартиру", []string{"юнусабад"}, "Юнусабадский"},
		{"hashtag with underscores", "Сдаю квартиру", []string{"мирзо_улугбек"}, "Мирзо-Улугбекский"},
		{"room count tag filtered", "Сдаю квартиру", []string{"2комнат"}, ""},
		{"uzbek tumani", "Yashnabad tumani, ijaraga", nil, "Яшнабадский"},
		{"bare mention in text", "Цена: 600$, Чиланзар", nil, "Чиланзарский"},
		{"latin alias", "Sergeli tumani", nil, "Сергелийский"},
		{"absent", "Сдаю квартиру", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDistrict(tt.text, tt.hashtags))
		})
	}
}

func TestNormalizeDistrict_TitleCaseFallback(t *testing.T) {
	// Unknown but plausible place names degrade to title case instead of
	// being discarded.
	assert.Equal(t, "Кибрай", normalizeDistrict("кибрай"))
	assert.Equal(t, "", normalizeDistrict("юз"))
	assert.Equal(t, "", normalizeDistrict(""))
}

func TestParseMetro(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"canonical", "метро Минор, 5 минут", "Минор"},
		{"alias", "Рядом метро Буюк ипак йули", "Буюк Ипак Йўли"},
		{"latin", "metro Oybek", "Ойбек"},
		{"unknown title cased", "метро Новая", "Новая"},
		{"absent", "Сдаю квартиру", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseMetro(tt.text))
		})
	}
}

func TestParseLandmark(t *testing.T) {
	assert.Equal(t, "It Park", parseLandmark("Рядом IT Park, очень удобно"))
	assert.Equal(t, "Мегапланет", parseLandmark("ориентир мегапланет"))
	assert.Equal(t, "", parseLandmark("Сдаю квартиру"))
}
