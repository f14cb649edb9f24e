package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Сдаю квартиру", "Сдаю квартиру"},
		{"nbsp", "Цена: 600$", "Цена: 600$"},
		{"en dash", "2–5", "2-5"},
		{"em dash", "цена — 600", "цена - 600"},
		{"horizontal runs collapse", "Цена:   600\t$", "Цена: 600 $"},
		{"single newline survives", "Адрес: ЖК Узмахал\nЦена: 600$", "Адрес: ЖК Узмахал\nЦена: 600$"},
		{"blank line runs collapse", "первая\n\n\n  вторая", "первая\nвторая"},
		{"trimmed", "  текст  ", "текст"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestExtractInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"600", 600, true},
		{"1 200", 1200, true},
		{"1-200", 1200, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := extractInt(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestExtractFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"55", 55, true},
		{"55.5", 55.5, true},
		{"55,5", 55.5, true},
		{"", 0, false},
		{"кв", 0, false},
	}
	for _, tt := range tests {
		got, ok := extractFloat(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
