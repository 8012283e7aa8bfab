// Package language guesses the language a book is written in.
package language

import (
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// sampleRunes caps how much of the text is fed to the detector; a few
// thousand runes is plenty for a whole-book guess.
const sampleRunes = 4000

// candidates covers the languages bookbot is expected to meet. A small
// set keeps the detector's model loading cheap.
var candidates = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
}

// Detector wraps a lingua detector configured for book text.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector over the candidate language set.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// Detect returns the most likely language of text and whether the
// detector is confident enough to report one.
func (d *Detector) Detect(text string) (string, bool) {
	lang, ok := d.detector.DetectLanguageOf(sample(text))
	if !ok {
		return "", false
	}
	return lang.String(), true
}

// sample returns at most sampleRunes runes from the start of text.
func sample(text string) string {
	if utf8.RuneCountInString(text) <= sampleRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:sampleRunes])
}
