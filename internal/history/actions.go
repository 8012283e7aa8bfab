package history

import (
	"fmt"
	"strings"

	dbpkg "github.com/VaqueroSH/bookbot/pkg/db"
	"github.com/urfave/cli/v2"
)

func ListAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	analyses, err := database.ListAnalyses(limit)
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	if len(analyses) == 0 {
		fmt.Println("No analyses found")
		return nil
	}

	// Print table header
	fmt.Printf("%-6s %-20s %-10s %-12s %-10s %-11s %-8s %s\n",
		"ID", "Analyzed", "Words", "Characters", "Sentences", "Paragraphs", "AvgLen", "Path")
	fmt.Println(strings.Repeat("-", 110))

	for _, a := range analyses {
		fmt.Printf("%-6d %-20s %-10d %-12d %-10d %-11d %-8.2f %s\n",
			a.AnalysisID,
			a.AnalyzedAt.Format("2006-01-02 15:04:05"),
			a.WordCount,
			a.CharacterCount,
			a.SentenceCount,
			a.ParagraphCount,
			a.AvgWordLength,
			a.Path,
		)
	}

	fmt.Printf("\nTotal: %d analyses\n", len(analyses))
	fmt.Printf("\nTip: Use 'bookbot history show <id>' to see details\n")

	return nil
}

// ShowAction shows details for a specific analysis
func ShowAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	analysisID, err := getAnalysisIDOrLatest(c, database)
	if err != nil {
		return err
	}

	analysis, err := database.GetAnalysisByID(analysisID)
	if err != nil {
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	fmt.Printf("Analysis %d\n", analysis.AnalysisID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Analyzed:          %s\n", analysis.AnalyzedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Path:              %s\n", analysis.Path)
	fmt.Printf("Content hash:      %s\n", analysis.ContentHash)
	fmt.Printf("Characters:        %d\n", analysis.CharacterCount)
	fmt.Printf("Words:             %d\n", analysis.WordCount)
	fmt.Printf("Sentences:         %d\n", analysis.SentenceCount)
	fmt.Printf("Paragraphs:        %d\n", analysis.ParagraphCount)
	fmt.Printf("Avg word length:   %.2f\n", analysis.AvgWordLength)
	if analysis.Language != "" {
		fmt.Printf("Language:          %s\n", analysis.Language)
	}

	if len(analysis.TopWords) > 0 {
		fmt.Printf("\nTop words (%d):\n", len(analysis.TopWords))
		fmt.Println(strings.Repeat("-", 60))
		for i, wf := range analysis.TopWords {
			fmt.Printf("%2d. %s: %d\n", i+1, wf.Word, wf.Count)
		}
	}

	return nil
}

// ClearAction deletes all stored analyses
func ClearAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	removed, err := database.ClearAnalyses()
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	fmt.Printf("Removed %d analyses from history\n", removed)
	return nil
}

// getAnalysisIDOrLatest returns the analysis ID from args, or the latest
// analysis when none is provided.
func getAnalysisIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		analyses, err := database.ListAnalyses(1)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest analysis: %w", err)
		}
		if len(analyses) == 0 {
			return 0, fmt.Errorf("no analyses found. Run 'bookbot <path-to-book>' first")
		}
		return analyses[0].AnalysisID, nil
	}

	var analysisID int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &analysisID); err != nil {
		return 0, fmt.Errorf("invalid analysis ID: %s", c.Args().First())
	}
	return analysisID, nil
}
