package analyze

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/VaqueroSH/bookbot/internal/common"
	"github.com/VaqueroSH/bookbot/models"
	"github.com/VaqueroSH/bookbot/pkg/db"
	"github.com/VaqueroSH/bookbot/pkg/language"
	"github.com/VaqueroSH/bookbot/pkg/loader"
	"github.com/VaqueroSH/bookbot/pkg/report"
	"github.com/urfave/cli/v2"
)

// topCharacters is how many character frequencies the simple format shows.
const topCharacters = 10

// AnalyzeAction loads the book named by the first argument, runs the
// statistics engine over it and prints the report in the configured
// format. A wrong argument count exits non-zero; a load failure is
// reported as a single "Error:" line on stdout and keeps a zero exit
// code, matching the classic bookbot behavior.
func AnalyzeAction(c *cli.Context) error {
	if c.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: bookbot <path-to-book>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: bookbot --help")
		return cli.Exit("", 1)
	}

	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config := models.DefaultConfig()
	if c.IsSet("config") {
		var err error
		config, err = models.LoadConfig(c.String("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if c.IsSet("top") {
		config.TopWords = c.Int("top")
	}
	if c.IsSet("format") {
		config.Format = c.String("format")
	}
	if c.Bool("no-history") {
		config.History = false
	}
	if c.Bool("no-language") {
		config.DetectLanguage = false
	}

	format, err := models.ParseOutputFormat(config.Format)
	if err != nil {
		return err
	}

	path := c.Args().First()
	text, err := loader.Load(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil
	}

	opts := report.Options{TopWords: config.TopWords}
	if config.DetectLanguage {
		opts.Detector = language.NewDetector()
	}
	r := report.Generate(path, text, opts)

	switch format {
	case models.FormatSimple:
		report.RenderSimple(os.Stdout, r, topCharacters)
	case models.FormatTable:
		report.RenderTable(os.Stdout, r)
	case models.FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(data))
	default:
		report.RenderBanner(os.Stdout, r)
	}

	if config.History {
		saveHistory(logger, r, text)
	}

	return nil
}

// saveHistory records the analysis in the local database. History is best
// effort: failures are logged, never surfaced to the caller.
func saveHistory(logger *slog.Logger, r report.Report, text string) {
	database, err := db.Open()
	if err != nil {
		logger.Warn("failed to open history database", "error", err)
		return
	}
	defer database.Close()

	hash := common.ContentHash([]byte(text))
	if previous, found, err := database.FindByContentHash(hash); err == nil && found {
		logger.Info("content previously analyzed",
			"analysis_id", previous.AnalysisID,
			"analyzed_at", previous.AnalyzedAt)
	}

	id, err := database.InsertAnalysis(db.Analysis{
		Path:           r.Path,
		ContentHash:    hash,
		CharacterCount: r.Characters,
		WordCount:      r.Words,
		SentenceCount:  r.Sentences,
		ParagraphCount: r.Paragraphs,
		AvgWordLength:  r.AverageWordLength,
		Language:       r.Language,
		TopWords:       r.TopWords,
	})
	if err != nil {
		logger.Warn("failed to save analysis", "error", err)
		return
	}
	logger.Info("analysis saved", "analysis_id", id, "path", r.Path)
}
