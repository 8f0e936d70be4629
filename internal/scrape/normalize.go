package scrape

import "strings"

// diacriticFolds maps the Latin-extended letters that actually show up in NBA
// rosters (Slavic, Baltic, Turkish, Spanish, Portuguese) to base ASCII.
// Lowercase only; NormalizeName lowercases before folding.
var diacriticFolds = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ä': 'a', 'ã': 'a', 'å': 'a', 'ā': 'a', 'ă': 'a', 'ą': 'a',
	'ç': 'c', 'ć': 'c', 'č': 'c', 'ĉ': 'c',
	'ď': 'd', 'đ': 'd',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e', 'ē': 'e', 'ė': 'e', 'ę': 'e', 'ě': 'e',
	'ğ': 'g', 'ģ': 'g',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i', 'ī': 'i', 'į': 'i', 'ı': 'i',
	'ķ': 'k',
	'ľ': 'l', 'ĺ': 'l', 'ļ': 'l', 'ł': 'l',
	'ñ': 'n', 'ń': 'n', 'ň': 'n', 'ņ': 'n',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'ö': 'o', 'õ': 'o', 'ø': 'o', 'ō': 'o', 'ő': 'o',
	'ŕ': 'r', 'ř': 'r',
	'ś': 's', 'š': 's', 'ş': 's', 'ș': 's',
	'ť': 't', 'ţ': 't', 'ț': 't',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u', 'ū': 'u', 'ů': 'u', 'ű': 'u', 'ų': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ź': 'z', 'ž': 'z', 'ż': 'z',
}

// NormalizeName reduces a display name to a canonical ASCII comparison key:
// lowercased, diacritics folded, everything but letters and spaces dropped.
// Used only for fuzzy equality between sources, never for display.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if folded, ok := diacriticFolds[r]; ok {
			r = folded
		}
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
