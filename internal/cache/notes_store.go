package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"talenthub/internal/model"
)

// NotesStore keeps ad-hoc recruiter notes per candidate in a Redis list,
// oldest first. Notes are append-only; there is no edit or delete.
type NotesStore interface {
	Get(ctx context.Context, candidateID string) ([]model.Note, error)
	Append(ctx context.Context, candidateID, text string) (*model.Note, error)
}

type notesStore struct {
	client *redis.Client
}

func NewNotesStore(client *redis.Client) NotesStore {
	return &notesStore{
		client: client,
	}
}

func (s *notesStore) Get(ctx context.Context, candidateID string) ([]model.Note, error) {
	entries, err := s.client.LRange(ctx, "notes:"+candidateID, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	notes := make([]model.Note, 0, len(entries))
	for _, entry := range entries {
		var note model.Note
		if err := json.Unmarshal([]byte(entry), &note); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func (s *notesStore) Append(ctx context.Context, candidateID, text string) (*model.Note, error) {
	note := model.Note{
		ID:        "note-" + uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now(),
	}
	data, err := json.Marshal(note)
	if err != nil {
		return nil, err
	}
	if err := s.client.RPush(ctx, "notes:"+candidateID, data).Err(); err != nil {
		return nil, err
	}
	return &note, nil
}
