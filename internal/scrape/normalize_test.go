package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain ascii lowercased",
			input:    "LeBron James",
			expected: "lebron james",
		},
		{
			name:     "diacritics folded",
			input:    "Luka Dončić",
			expected: "luka doncic",
		},
		{
			name:     "serbian and latvian letters",
			input:    "Nikola Jokić",
			expected: "nikola jokic",
		},
		{
			name:     "kristaps porzingis",
			input:    "Kristaps Porziņģis",
			expected: "kristaps porzingis",
		},
		{
			name:     "punctuation stripped",
			input:    "Jaren Jackson Jr.",
			expected: "jaren jackson jr",
		},
		{
			name:     "apostrophes stripped",
			input:    "De'Aaron Fox",
			expected: "deaaron fox",
		},
		{
			name:     "hyphens stripped",
			input:    "Shai Gilgeous-Alexander",
			expected: "shai gilgeousalexander",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Stephen Curry  ",
			expected: "stephen curry",
		},
		{
			name:     "digits dropped",
			input:    "Player 23",
			expected: "player",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{"Luka Dončić", "Jaren Jackson Jr.", "De'Aaron Fox"}
	for _, input := range inputs {
		once := NormalizeName(input)
		assert.Equal(t, once, NormalizeName(once))
	}
}

func TestNormalizeNameEqualAcrossSources(t *testing.T) {
	// The same player spelled with and without diacritics must compare equal.
	assert.Equal(t, NormalizeName("Luka Doncic"), NormalizeName("Luka Dončić"))
	assert.Equal(t, NormalizeName("Bogdan Bogdanovic"), NormalizeName("Bogdan Bogdanović"))
}
