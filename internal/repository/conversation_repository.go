package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"rickverse/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// timeLayout keeps timestamps lexicographically sortable in the TEXT column.
const timeLayout = "2006-01-02 15:04:05"

type ConversationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewConversationRepository(db *sql.DB, logger *zap.Logger) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ConversationRepository) Create(ctx context.Context, conv *models.Conversation) error {
	embeddingJSON, err := json.Marshal(conv.Embedding)
	if err != nil {
		return err
	}
	scoresJSON, err := json.Marshal(conv.Scores)
	if err != nil {
		return err
	}

	query := squirrel.Insert("conversations").
		Columns("id", "timestamp", "char1", "char2", "dialogue", "embedding", "scores", "note").
		Values(conv.ID.String(), conv.Timestamp.UTC().Format(timeLayout),
			conv.Char1, conv.Char2, conv.Dialogue,
			string(embeddingJSON), string(scoresJSON), conv.Note)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// ListRecent returns the newest conversations, timestamp descending.
func (r *ConversationRepository) ListRecent(ctx context.Context, limit int) ([]*models.Conversation, error) {
	query := squirrel.Select("id", "timestamp", "char1", "char2", "dialogue", "embedding", "scores", "note").
		From("conversations").
		OrderBy("timestamp DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConversations(rows)
}

// All loads every stored conversation, embeddings included, for the
// brute-force similarity scan.
func (r *ConversationRepository) All(ctx context.Context) ([]*models.Conversation, error) {
	query := squirrel.Select("id", "timestamp", "char1", "char2", "dialogue", "embedding", "scores", "note").
		From("conversations")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConversations(rows)
}

func scanConversations(rows *sql.Rows) ([]*models.Conversation, error) {
	var conversations []*models.Conversation
	for rows.Next() {
		var (
			conv          models.Conversation
			id            string
			timestamp     string
			embeddingJSON string
			scoresJSON    string
		)
		if err := rows.Scan(
			&id, &timestamp, &conv.Char1, &conv.Char2, &conv.Dialogue,
			&embeddingJSON, &scoresJSON, &conv.Note,
		); err != nil {
			return nil, err
		}

		parsedID, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		conv.ID = parsedID

		ts, err := time.Parse(timeLayout, timestamp)
		if err != nil {
			return nil, err
		}
		conv.Timestamp = ts

		if err := json.Unmarshal([]byte(embeddingJSON), &conv.Embedding); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(scoresJSON), &conv.Scores); err != nil {
			return nil, err
		}

		conversations = append(conversations, &conv)
	}

	return conversations, rows.Err()
}
