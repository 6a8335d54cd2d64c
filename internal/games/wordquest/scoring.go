package wordquest

import "unicode"

// Tier groups letters that share a point value.
type Tier struct {
	Name    string
	Points  int
	Letters string
}

// tiers is the scoring table. Every letter a-z appears in exactly one tier.
var tiers = []Tier{
	{Name: "Common", Points: 10, Letters: "eat"},
	{Name: "Regular", Points: 15, Letters: "hinosr"},
	{Name: "Medium", Points: 20, Letters: "dl"},
	{Name: "Less common", Points: 25, Letters: "ufmcgy"},
	{Name: "Rare", Points: 30, Letters: "pbw"},
	{Name: "Very rare", Points: 35, Letters: "vkjxqz"},
}

var letterScores = func() map[rune]int {
	m := make(map[rune]int, 26)
	for _, t := range tiers {
		for _, r := range t.Letters {
			m[r] = t.Points
		}
	}
	return m
}()

// ScoreOf returns the point value of a letter, ignoring case.
// Anything outside a-z scores 0.
func ScoreOf(letter rune) int {
	return letterScores[unicode.ToLower(letter)]
}

// Tiers returns the scoring table grouped by value, lowest first.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// Alphabet returns the tile source alphabet, a through z.
func Alphabet() []rune {
	letters := make([]rune, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		letters = append(letters, r)
	}
	return letters
}
