package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/VaqueroSH/bookbot/pkg/textstats"
)

// Analysis is one stored history row.
type Analysis struct {
	AnalysisID     int64
	Path           string
	ContentHash    string
	AnalyzedAt     time.Time
	CharacterCount int
	WordCount      int
	SentenceCount  int
	ParagraphCount int
	AvgWordLength  float64
	Language       string
	TopWords       []textstats.WordFreq
}

// InsertAnalysis stores one analysis row and returns its id.
func (db *DB) InsertAnalysis(a Analysis) (int64, error) {
	topWords, err := json.Marshal(a.TopWords)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal top words: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO analyses (path, content_hash, character_count, word_count,
			sentence_count, paragraph_count, avg_word_length, language, top_words)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.Path, a.ContentHash, a.CharacterCount, a.WordCount,
		a.SentenceCount, a.ParagraphCount, a.AvgWordLength, a.Language, string(topWords))
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}

	analysisID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis ID: %w", err)
	}

	return analysisID, nil
}

// ListAnalyses returns up to limit analyses, newest first.
func (db *DB) ListAnalyses(limit int) ([]Analysis, error) {
	rows, err := db.Query(`
		SELECT analysis_id, path, content_hash, analyzed_at, character_count,
			word_count, sentence_count, paragraph_count, avg_word_length,
			language, top_words
		FROM analyses
		ORDER BY analysis_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}

	return analyses, rows.Err()
}

// GetAnalysisByID returns a single stored analysis.
func (db *DB) GetAnalysisByID(id int64) (*Analysis, error) {
	row := db.QueryRow(`
		SELECT analysis_id, path, content_hash, analyzed_at, character_count,
			word_count, sentence_count, paragraph_count, avg_word_length,
			language, top_words
		FROM analyses
		WHERE analysis_id = ?
	`, id)

	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("analysis %d not found", id)
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// FindByContentHash returns the most recent analysis of identical content,
// or found=false when this content has never been analyzed.
func (db *DB) FindByContentHash(hash string) (*Analysis, bool, error) {
	row := db.QueryRow(`
		SELECT analysis_id, path, content_hash, analyzed_at, character_count,
			word_count, sentence_count, paragraph_count, avg_word_length,
			language, top_words
		FROM analyses
		WHERE content_hash = ?
		ORDER BY analysis_id DESC
		LIMIT 1
	`, hash)

	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &a, true, nil
}

// ClearAnalyses deletes every history row and reports how many went away.
func (db *DB) ClearAnalyses() (int64, error) {
	result, err := db.Exec("DELETE FROM analyses")
	if err != nil {
		return 0, fmt.Errorf("failed to clear analyses: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count removed analyses: %w", err)
	}

	return removed, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(s scanner) (Analysis, error) {
	var a Analysis
	var topWords string
	err := s.Scan(&a.AnalysisID, &a.Path, &a.ContentHash, &a.AnalyzedAt,
		&a.CharacterCount, &a.WordCount, &a.SentenceCount, &a.ParagraphCount,
		&a.AvgWordLength, &a.Language, &topWords)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, err
		}
		return Analysis{}, fmt.Errorf("failed to scan analysis: %w", err)
	}

	if err := json.Unmarshal([]byte(topWords), &a.TopWords); err != nil {
		return Analysis{}, fmt.Errorf("failed to unmarshal top words: %w", err)
	}

	return a, nil
}
