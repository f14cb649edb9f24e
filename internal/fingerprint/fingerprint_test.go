package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextHash(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, TextHash("Сдаю квартиру"), TextHash("Сдаю квартиру"))
	})

	t.Run("whitespace and case insensitive", func(t *testing.T) {
		assert.Equal(t, TextHash("Сдаю  квартиру"), TextHash("сдаю квартиру"))
		assert.Equal(t, TextHash("Сдаю\nквартиру "), TextHash("Сдаю квартиру"))
	})

	t.Run("content sensitive", func(t *testing.T) {
		assert.NotEqual(t, TextHash("Сдаю квартиру"), TextHash("Сдаю комнату"))
	})

	t.Run("empty text never matches", func(t *testing.T) {
		assert.Equal(t, "", TextHash(""))
	})
}

func TestFingerprint(t *testing.T) {
	phones := []string{"+998901234567"}

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Fingerprint("Сдаю квартиру", phones), Fingerprint("Сдаю квартиру", phones))
	})

	t.Run("phone order irrelevant", func(t *testing.T) {
		a := Fingerprint("Сдаю квартиру", []string{"+998901234567", "+998712345678"})
		b := Fingerprint("Сдаю квартиру", []string{"+998712345678", "+998901234567"})
		assert.Equal(t, a, b)
	})

	t.Run("does not mutate the phone slice", func(t *testing.T) {
		in := []string{"+998901234567", "+998712345678"}
		Fingerprint("Сдаю квартиру", in)
		assert.Equal(t, []string{"+998901234567", "+998712345678"}, in)
	})

	t.Run("trailing edits beyond the word window collide", func(t *testing.T) {
		head := "Сдаю 2 комнатную квартиру в центре города рядом с метро " +
			"мебель техника кондиционер интернет балкон парковка депозит " +
			"триста долларов без посредников"
		a := Fingerprint(head+" цена шестьсот", phones)
		b := Fingerprint(head+" цена семьсот", phones)
		assert.Equal(t, a, b)
	})

	t.Run("different phones differ", func(t *testing.T) {
		a := Fingerprint("Сдаю квартиру", []string{"+998901234567"})
		b := Fingerprint("Сдаю квартиру", []string{"+998712345678"})
		assert.NotEqual(t, a, b)
	})
}
