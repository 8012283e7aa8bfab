package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA temp_store = MEMORY;

-- Analyses: one row per completed report
CREATE TABLE IF NOT EXISTS analyses (
    analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    analyzed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    -- Scalar statistics from the report snapshot
    character_count INTEGER NOT NULL,
    word_count INTEGER NOT NULL,
    sentence_count INTEGER NOT NULL,
    paragraph_count INTEGER NOT NULL,
    avg_word_length REAL NOT NULL,

    -- Detected language name, empty when detection was skipped
    language TEXT NOT NULL DEFAULT '',

    -- Top word frequencies as a JSON array: [{"word": "...", "count": N}, ...]
    top_words TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_analyses_hash ON analyses(content_hash);
CREATE INDEX IF NOT EXISTS idx_analyses_path ON analyses(path);
CREATE INDEX IF NOT EXISTS idx_analyses_time ON analyses(analyzed_at DESC);
`
