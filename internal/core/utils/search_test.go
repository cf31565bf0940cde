package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		exp  string
	}{
		{name: "accents", in: "Rakotoarisoa Hérvé", exp: "rakotoarisoa herve"},
		{name: "whitespace", in: "  Mixage \t  final\n", exp: "mixage final"},
		{name: "upper", in: "ÉCOLE", exp: "ecole"},
		{name: "empty", in: "", exp: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, Normalize(test.in))
		})
	}
}

func TestMatches(t *testing.T) {
	text := "12 Andrianina Ràfàlì 2025-06-01 220000 Enregistrement voix heure 2 50000 100000"

	assert.True(t, Matches(text, "rafali"))
	assert.True(t, Matches(text, "ENREGISTREMENT"))
	assert.True(t, Matches(text, "220000"))
	assert.True(t, Matches(text, "  "))
	assert.False(t, Matches(text, "mastering"))
}
