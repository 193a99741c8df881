package repository

import (
	"context"
	"database/sql"

	"rickverse/internal/models"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// NoteRepository manages free-text notes about characters. The table is kept
// alongside conversations and written by the seeder; no HTTP route exposes it.
type NoteRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewNoteRepository(db *sql.DB, logger *zap.Logger) *NoteRepository {
	return &NoteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *NoteRepository) Create(ctx context.Context, note *models.CharacterNote) error {
	query := squirrel.Insert("notes").
		Columns("character_id", "note").
		Values(note.CharacterID, note.Note)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *NoteRepository) GetByCharacterID(ctx context.Context, characterID int) ([]*models.CharacterNote, error) {
	query := squirrel.Select("character_id", "note").
		From("notes").
		Where(squirrel.Eq{"character_id": characterID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*models.CharacterNote
	for rows.Next() {
		var note models.CharacterNote
		if err := rows.Scan(&note.CharacterID, &note.Note); err != nil {
			return nil, err
		}
		notes = append(notes, &note)
	}

	return notes, rows.Err()
}
