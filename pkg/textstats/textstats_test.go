package textstats

import (
	"math"
	"strings"
	"testing"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: " \n\t ", want: 0},
		{name: "single word", text: "hello", want: 1},
		{name: "multiple spaces between words", text: "hello   world", want: 2},
		{name: "newlines and tabs delimit", text: "one\ntwo\tthree", want: 3},
		{name: "punctuation stays attached", text: "Hello, world!", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.text); got != tt.want {
				t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestWordCount_TrimInvariant(t *testing.T) {
	inputs := []string{
		"",
		"  hello world  ",
		"\n\nPara one.\n\nPara two.\n\n",
		"\tcat ",
	}
	for _, s := range inputs {
		if got, want := WordCount(s), WordCount(strings.TrimSpace(s)); got != want {
			t.Errorf("WordCount(%q) = %d, differs from trimmed input count %d", s, got, want)
		}
	}
}

func TestCharacterCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "ascii with whitespace", text: "a b\nc", want: 5},
		{name: "multibyte runes count once", text: "héllo", want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CharacterCount(tt.text); got != tt.want {
				t.Errorf("CharacterCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestSentenceCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "mixed terminators", text: "Hello. World! How are you?", want: 3},
		{name: "punctuation only", text: "...!!!???", want: 0},
		{name: "no terminator still counts", text: "An unfinished thought", want: 1},
		{name: "runs collapse", text: "One! Two?? Three...", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SentenceCount(tt.text); got != tt.want {
				t.Errorf("SentenceCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestParagraphCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "three paragraphs", text: "Para one.\n\nPara two.\n\nPara three.", want: 3},
		{name: "single paragraph", text: "Just one block of text.", want: 1},
		{name: "extra blank lines ignored", text: "a\n\n\n\nb", want: 2},
		{name: "blank lines only", text: "\n\n\n\n", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParagraphCount(tt.text); got != tt.want {
				t.Errorf("ParagraphCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestAverageWordLength(t *testing.T) {
	const epsilon = 1e-9

	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "empty", text: "", want: 0.0},
		{name: "cat dog bird", text: "cat dog bird", want: 10.0 / 3.0},
		{name: "punctuation stripped", text: "it's a fine day.", want: 11.0 / 4.0},
		{name: "only punctuation yields zero", text: "!!! ??? ---", want: 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageWordLength(tt.text)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("AverageWordLength(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTopWords(t *testing.T) {
	got := TopWords("the cat the dog the", 2)
	want := []WordFreq{{Word: "the", Count: 3}, {Word: "cat", Count: 1}}

	if len(got) != len(want) {
		t.Fatalf("TopWords() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TopWords()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTopWords_LowercasesAndStrips(t *testing.T) {
	got := TopWords("The THE the! 'the'", 1)
	if len(got) != 1 {
		t.Fatalf("TopWords() returned %d entries, want 1", len(got))
	}
	if got[0].Word != "the" || got[0].Count != 4 {
		t.Errorf("TopWords()[0] = %v, want {the 4}", got[0])
	}
}

func TestTopWords_NoEmptyKeys(t *testing.T) {
	got := TopWords("!!! ??? ... --- ,,, word", 10)
	for _, wf := range got {
		if wf.Word == "" {
			t.Error("TopWords() contains an empty-string key")
		}
	}
	if len(got) != 1 {
		t.Errorf("TopWords() returned %d entries, want 1 (punctuation-only tokens discarded)", len(got))
	}
}

func TestTopWords_Empty(t *testing.T) {
	if got := TopWords("", 5); len(got) != 0 {
		t.Errorf("TopWords(\"\") returned %d entries, want 0", len(got))
	}
}

func TestCharacterFrequency_SumMatchesCharacterCount(t *testing.T) {
	inputs := []string{
		"",
		"Hello, World!\n",
		"Para one.\n\nPara two.",
		"MIXED case And Spaces",
	}
	for _, s := range inputs {
		sum := 0
		for _, count := range CharacterFrequency(s) {
			sum += count
		}
		if want := CharacterCount(strings.ToLower(s)); sum != want {
			t.Errorf("sum(CharacterFrequency(%q)) = %d, want %d", s, sum, want)
		}
	}
}

func TestCharacterFrequency_Lowercases(t *testing.T) {
	freq := CharacterFrequency("AaA")
	if freq['a'] != 3 {
		t.Errorf("CharacterFrequency(\"AaA\")['a'] = %d, want 3", freq['a'])
	}
	if _, exists := freq['A']; exists {
		t.Error("CharacterFrequency(\"AaA\") contains uppercase key")
	}
}

func TestRankCharacters(t *testing.T) {
	got := RankCharacters("aabbc")
	want := []CharFreq{{Char: 'a', Count: 2}, {Char: 'b', Count: 2}, {Char: 'c', Count: 1}}

	if len(got) != len(want) {
		t.Fatalf("RankCharacters() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RankCharacters()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRankCharacters_TiesKeepFirstSeenOrder(t *testing.T) {
	// 'z' appears before 'a'; with equal counts it must stay first.
	got := RankCharacters("za")
	if got[0].Char != 'z' || got[1].Char != 'a' {
		t.Errorf("RankCharacters(\"za\") = %v, want z before a", got)
	}
}

func TestRankCharacters_Empty(t *testing.T) {
	if got := RankCharacters(""); len(got) != 0 {
		t.Errorf("RankCharacters(\"\") returned %d entries, want 0", len(got))
	}
}
