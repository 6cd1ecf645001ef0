package insig

import "unicode"

// CharClass is the closed set of character classes that select a motif
// generator for one typed character. Classification is computed once per
// rune; dispatch on the tag is the only routing the engine does.
type CharClass uint8

const (
	// ClassSpace characters legitimately produce zero elements.
	ClassSpace CharClass = iota

	// ClassVowel maps to the spark-burst motif.
	ClassVowel

	// ClassDigit maps to the petal-cluster motif.
	ClassDigit

	// ClassConsonant covers all remaining letters and maps to the arc or
	// twig motif (the generator's leading RNG draw picks which).
	ClassConsonant

	// ClassSymbol covers punctuation and everything else, and maps to
	// the rune-bar motif.
	ClassSymbol
)

// String returns the lower-case class name.
func (c CharClass) String() string {
	switch c {
	case ClassSpace:
		return "space"
	case ClassVowel:
		return "vowel"
	case ClassDigit:
		return "digit"
	case ClassConsonant:
		return "consonant"
	case ClassSymbol:
		return "symbol"
	}
	return "symbol"
}

// Classify tags a rune with its motif class. Total: every rune maps to
// exactly one class.
func Classify(r rune) CharClass {
	switch {
	case unicode.IsSpace(r):
		return ClassSpace
	case isVowel(r):
		return ClassVowel
	case unicode.IsDigit(r):
		return ClassDigit
	case unicode.IsLetter(r):
		return ClassConsonant
	default:
		return ClassSymbol
	}
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
