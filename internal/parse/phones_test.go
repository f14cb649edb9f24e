package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPhones(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain full", "+998901234567", []string{"+998901234567"}},
		{"grouped", "+998 90 123-45-67", []string{"+998901234567"}},
		{"parenthesized without plus", "998(90)1234567", []string{"+998901234567"}},
		{"deduplicated first seen order", "+998901234567 и +998 90 123 45 67, также +998712345678",
			[]string{"+998901234567", "+998712345678"}},
		{"local nine digits", "Тел: 90 123 45 67", []string{"+998901234567"}},
		{"local bad leading digit", "Тел: 60 123 45 67", nil},
		{"local ignored when full present", "+998712345678, доп 90 123 45 67", []string{"+998712345678"}},
		{"empty", "", nil},
		{"no phones", "Сдаю квартиру", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhones(tt.in))
		})
	}
}
