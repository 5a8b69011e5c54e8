package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"drmind/internal/models"
)

type EntryStorage struct {
	pool *pgxpool.Pool
}

func NewEntryStorage(pool *pgxpool.Pool) *EntryStorage {
	return &EntryStorage{
		pool: pool,
	}
}

// CreateEntry appends one entry. The id and creation timestamp are
// assigned here; everything is written in a single statement, so the
// entry lands whole or not at all.
func (db_es *EntryStorage) CreateEntry(ctx context.Context, entry *models.MoodEntry) error {
	op := "internal/storage/entries.go CreateEntry"

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	suggestionsJSON, err := json.Marshal(entry.Suggestions)
	if err != nil {
		return fmt.Errorf("failure to encode suggestions in %s: %w", op, err)
	}

	sql_query := `
	INSERT INTO mood_entries
	(id, mood, journal, sentiment, comfort_message, suggestions, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err = db_es.pool.Exec(
		ctx,
		sql_query,
		entry.ID,
		entry.Mood,
		entry.Journal,
		entry.Sentiment,
		entry.ComfortMessage,
		string(suggestionsJSON),
		entry.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failure to create entry in %s: %w", op, err)
	}

	return nil
}

// GetEntries returns entries newest first. A limit <= 0 returns the
// whole journal. The id tiebreak keeps repeated reads of
// same-timestamp entries in one stable order.
func (db_es *EntryStorage) GetEntries(ctx context.Context, limit int) ([]models.MoodEntry, error) {
	op := "internal/storage/entries.go GetEntries"

	sql_query := `
	SELECT id, mood, journal, sentiment, comfort_message, suggestions, created_at
	FROM mood_entries
	ORDER BY created_at DESC, id;
	`

	if limit > 0 {
		sql_query = fmt.Sprintf(`
	SELECT id, mood, journal, sentiment, comfort_message, suggestions, created_at
	FROM mood_entries
	ORDER BY created_at DESC, id
	LIMIT %d;
	`, limit)
	}

	rows, err := db_es.pool.Query(ctx, sql_query)

	if err != nil {
		return nil, fmt.Errorf("failure to get entries in %s: %w", op, err)
	}
	defer rows.Close()

	entries := []models.MoodEntry{}

	for rows.Next() {
		entry := models.MoodEntry{}
		var suggestionsJSON string

		err := rows.Scan(
			&entry.ID,
			&entry.Mood,
			&entry.Journal,
			&entry.Sentiment,
			&entry.ComfortMessage,
			&suggestionsJSON,
			&entry.CreatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("failure to scan entries in %s: %w", op, err)
		}

		if err := json.Unmarshal([]byte(suggestionsJSON), &entry.Suggestions); err != nil {
			return nil, fmt.Errorf("failure to decode suggestions in %s: %w", op, err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failure reading entry rows in %s: %w", op, err)
	}

	return entries, nil
}
