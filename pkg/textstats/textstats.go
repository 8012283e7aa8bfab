// Package textstats implements the statistics bookbot reports for a book's
// text. Every function is pure and total over any input string: the empty
// string yields zero counts and empty collections.
package textstats

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentenceDelims matches a run of sentence-ending punctuation.
var sentenceDelims = regexp.MustCompile(`[.!?]+`)

// WordFreq is one entry of a word frequency table.
type WordFreq struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// CharFreq is one entry of a ranked character frequency table.
type CharFreq struct {
	Char  rune
	Count int
}

// WordCount returns the number of whitespace-delimited words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharacterCount returns the number of characters (runes) in text,
// whitespace included.
func CharacterCount(text string) int {
	return utf8.RuneCountInString(text)
}

// SentenceCount splits text on runs of '.', '!' and '?' and counts the
// fragments that are non-empty after trimming whitespace.
func SentenceCount(text string) int {
	count := 0
	for _, fragment := range sentenceDelims.Split(text, -1) {
		if strings.TrimSpace(fragment) != "" {
			count++
		}
	}
	return count
}

// ParagraphCount splits text on blank-line separators and counts the
// fragments that are non-empty after trimming whitespace.
func ParagraphCount(text string) int {
	count := 0
	for _, fragment := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(fragment) != "" {
			count++
		}
	}
	return count
}

// stripWord removes every rune that is not a letter, digit or underscore.
func stripWord(word string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, word)
}

// AverageWordLength returns the mean length of the words in text after
// stripping non-word runes. Words that strip down to nothing are left out
// of both the sum and the divisor. The result is unrounded; presentation
// layers round to two decimals.
func AverageWordLength(text string) float64 {
	total, words := 0, 0
	for _, word := range strings.Fields(text) {
		cleaned := stripWord(word)
		if cleaned == "" {
			continue
		}
		total += utf8.RuneCountInString(cleaned)
		words++
	}
	if words == 0 {
		return 0.0
	}
	return float64(total) / float64(words)
}

// TopWords returns the n most frequent words in text, ordered by
// descending count. Equal counts keep the order the words first appeared
// in. Words are lowercased and stripped of non-word runes before
// counting; tokens that strip down to nothing are discarded, so the
// table never contains an empty key.
func TopWords(text string, n int) []WordFreq {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		cleaned := stripWord(word)
		if cleaned == "" {
			continue
		}
		if _, seen := counts[cleaned]; !seen {
			firstSeen[cleaned] = len(firstSeen)
		}
		counts[cleaned]++
	}

	freqs := make([]WordFreq, 0, len(counts))
	for word, count := range counts {
		freqs = append(freqs, WordFreq{Word: word, Count: count})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return firstSeen[freqs[i].Word] < firstSeen[freqs[j].Word]
	})

	if n < 0 {
		n = 0
	}
	if len(freqs) > n {
		freqs = freqs[:n]
	}
	return freqs
}

// CharacterFrequency counts every rune of the lowercased text, spaces,
// newlines and punctuation included.
func CharacterFrequency(text string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range strings.ToLower(text) {
		counts[r]++
	}
	return counts
}

// RankCharacters returns the character frequencies of the lowercased text
// sorted by descending count. Equal counts keep the order the characters
// first appeared in; the ranking works from the text rather than a
// frequency map because a Go map carries no insertion order.
func RankCharacters(text string) []CharFreq {
	counts := make(map[rune]int)
	var order []rune
	for _, r := range strings.ToLower(text) {
		if _, seen := counts[r]; !seen {
			order = append(order, r)
		}
		counts[r]++
	}

	ranked := make([]CharFreq, 0, len(order))
	for _, r := range order {
		ranked = append(ranked, CharFreq{Char: r, Count: counts[r]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
