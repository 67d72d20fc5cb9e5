package title

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Correction struct {
	From string
	To   string
}

// Applied in order; later pairs see the output of earlier ones.
var corrections = []Correction{
	{"deveoper", "developer"},
	{"developsr", "developer"},
	{"developei", "developer"},
	{"dot net", ".net"},
	{"fulkstack", "fullstack"},
	{"full-stack", "full stack"},
	{"mern-stack", "mern stack"},
	{"front-end", "frontend"},
	{"back-end", "backend"},
	{"font end", "frontend"},
	{"senuor", "senior"},
	{"engin", "engineer"},
}

func Corrections() []Correction {
	out := make([]Correction, len(corrections))
	copy(out, corrections)
	return out
}

// Normalize lowercases a job title, turns punctuation into spaces, collapses
// whitespace and applies the typo corrections as plain substring replacements.
// Lowercasing uses the full Unicode mapping: "İ" becomes "i" plus a combining
// dot, and a word-final "Σ" becomes "ς".
func Normalize(input string) string {
	if input == "" {
		return ""
	}
	// Casers keep state between calls.
	input = cases.Lower(language.Und).String(input)

	b := strings.Builder{}
	b.Grow(len(input))
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}

	out := strings.Join(strings.Fields(b.String()), " ")
	for _, c := range corrections {
		out = strings.ReplaceAll(out, c.From, c.To)
	}
	return out
}
