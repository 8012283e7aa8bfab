package report

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// charLabel renders whitespace characters with a readable name.
func charLabel(r rune) string {
	switch r {
	case ' ':
		return "space"
	case '\n':
		return "newline"
	case '\t':
		return "tab"
	default:
		return string(r)
	}
}

// RenderBanner writes the framed report. The character section lists
// letters only, keeping raw whitespace glyphs out of the output.
func RenderBanner(w io.Writer, r Report) {
	fmt.Fprintln(w, "============= BOOKBOT =============")
	fmt.Fprintf(w, "Analyzing book found at %s...\n", r.Path)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--------- Word Count ---------")
	fmt.Fprintf(w, "Found %d total words\n", r.Words)
	fmt.Fprintln(w, "--------- Character Count -------")
	for _, cc := range r.CharacterRanks {
		ch, _ := utf8.DecodeRuneInString(cc.Char)
		if !unicode.IsLetter(ch) {
			continue
		}
		fmt.Fprintf(w, "%s: %d\n", cc.Char, cc.Count)
	}
	fmt.Fprintln(w, "=============== END ===============")
}

// RenderSimple writes the plain report: word count plus the topChars most
// frequent characters, whitespace rendered with readable labels.
func RenderSimple(w io.Writer, r Report, topChars int) {
	fmt.Fprintf(w, "%d words found in the document\n", r.Words)
	fmt.Fprintln(w, "Character frequency analysis:")
	ranks := r.CharacterRanks
	if topChars >= 0 && len(ranks) > topChars {
		ranks = ranks[:topChars]
	}
	for _, cc := range ranks {
		ch, _ := utf8.DecodeRuneInString(cc.Char)
		fmt.Fprintf(w, "  '%s': %d\n", charLabel(ch), cc.Count)
	}
}

// RenderTable writes the full snapshot as rounded tables: one for the
// scalar statistics, one for the top words.
func RenderTable(w io.Writer, r Report) {
	stats := table.NewWriter()
	stats.SetOutputMirror(w)
	stats.SetStyle(table.StyleRounded)
	stats.AppendHeader(table.Row{"Statistic", "Value"})
	stats.AppendRows([]table.Row{
		{"Characters", r.Characters},
		{"Words", r.Words},
		{"Sentences", r.Sentences},
		{"Paragraphs", r.Paragraphs},
		{"Average word length", fmt.Sprintf("%.2f", r.AverageWordLength)},
	})
	if r.Language != "" {
		stats.AppendRow(table.Row{"Language", r.Language})
	}
	stats.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	stats.Render()

	if len(r.TopWords) == 0 {
		return
	}

	words := table.NewWriter()
	words.SetOutputMirror(w)
	words.SetStyle(table.StyleRounded)
	words.AppendHeader(table.Row{"Word", "Count"})
	for _, wf := range r.TopWords {
		words.AppendRow(table.Row{wf.Word, wf.Count})
	}
	words.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	words.Render()
}
