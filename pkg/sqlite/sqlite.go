package sqlite

import (
	"database/sql"
	"fmt"

	"rickverse/pkg/config"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversations (
	id TEXT PRIMARY KEY,
	timestamp TEXT,
	char1 TEXT,
	char2 TEXT,
	dialogue TEXT,
	embedding TEXT,
	scores TEXT,
	note TEXT
);

CREATE TABLE IF NOT EXISTS notes (
	character_id INTEGER,
	note TEXT
);
`

// Open opens the single-file database and ensures the schema exists.
func Open(cfg *config.DatabaseConfig, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("Database opened",
		zap.String("path", cfg.Path),
	)

	return db, nil
}
