// Package report assembles and renders the statistics snapshot for one book.
package report

import (
	"math"

	"github.com/VaqueroSH/bookbot/pkg/textstats"
)

// CharacterCount is one entry of the ranked character table, with the
// character held as a string so whitespace survives JSON and YAML.
type CharacterCount struct {
	Char  string `json:"char" yaml:"char"`
	Count int    `json:"count" yaml:"count"`
}

// Report is the aggregate snapshot of one analysis. It is built fresh per
// invocation and never mutated afterwards.
type Report struct {
	Path              string               `json:"path" yaml:"path"`
	Characters        int                  `json:"characters" yaml:"characters"`
	Words             int                  `json:"words" yaml:"words"`
	Sentences         int                  `json:"sentences" yaml:"sentences"`
	Paragraphs        int                  `json:"paragraphs" yaml:"paragraphs"`
	AverageWordLength float64              `json:"average_word_length" yaml:"average_word_length"`
	TopWords          []textstats.WordFreq `json:"top_words" yaml:"top_words"`
	CharacterRanks    []CharacterCount     `json:"character_frequency" yaml:"character_frequency"`
	Language          string               `json:"language,omitempty" yaml:"language,omitempty"`
}

// LanguageDetector guesses the language a text is written in.
type LanguageDetector interface {
	Detect(text string) (string, bool)
}

// Options controls what Generate computes.
type Options struct {
	TopWords int              // number of word-frequency entries to keep (default 5)
	Detector LanguageDetector // nil skips language detection
}

// Generate runs the statistics engine over text and assembles the
// snapshot. The average word length is rounded to two decimal places.
func Generate(path, text string, opts Options) Report {
	topN := opts.TopWords
	if topN <= 0 {
		topN = 5
	}

	ranked := textstats.RankCharacters(text)
	chars := make([]CharacterCount, len(ranked))
	for i, cf := range ranked {
		chars[i] = CharacterCount{Char: string(cf.Char), Count: cf.Count}
	}

	r := Report{
		Path:              path,
		Characters:        textstats.CharacterCount(text),
		Words:             textstats.WordCount(text),
		Sentences:         textstats.SentenceCount(text),
		Paragraphs:        textstats.ParagraphCount(text),
		AverageWordLength: Round2(textstats.AverageWordLength(text)),
		TopWords:          textstats.TopWords(text, topN),
		CharacterRanks:    chars,
	}

	if opts.Detector != nil {
		if lang, ok := opts.Detector.Detect(text); ok {
			r.Language = lang
		}
	}

	return r
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
