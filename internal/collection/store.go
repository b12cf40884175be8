// Package collection is the durable store of bookmarked words. The full
// collection is serialized as a JSON array under a fixed storage key in a
// local SQLite database after every mutation, and hydrated from it at
// startup. Persistence is best-effort: read failures and corrupt data fall
// back to an empty collection and are never fatal.
package collection

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// storageKey is the fixed key the serialized collection lives under.
const storageKey = "wordbook.items"

// SavedItem is one bookmarked word with the image and definition snippet it
// was saved with. It copies the data it needs; it never references live
// session state.
type SavedItem struct {
	ID         string `json:"id"`
	Word       string `json:"word"`
	ImageURL   string `json:"imageUrl"`
	Definition string `json:"definition"`
	Timestamp  int64  `json:"timestamp"`
}

// Store holds the in-memory collection and its SQLite persistence handle.
// Items are ordered most-recent-first.
type Store struct {
	db    *sql.DB
	items []SavedItem
}

// Open opens (or creates) the store database at path and hydrates the
// collection. Corrupt or missing persisted data yields an empty collection.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS storage (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize collection database: %w", err)
	}

	s := &Store{db: db}
	s.hydrate()
	return s, nil
}

// hydrate loads the persisted collection. All failures degrade to empty.
func (s *Store) hydrate() {
	var value string
	err := s.db.QueryRow(`SELECT value FROM storage WHERE key = ?`, storageKey).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			fmt.Fprintf(os.Stderr, "Warning: failed to read saved words: %v\n", err)
		}
		return
	}

	var items []SavedItem
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saved words are corrupt, starting empty: %v\n", err)
		return
	}
	s.items = items
}

// persist writes the full collection after a mutation. Write failures are
// logged and swallowed.
func (s *Store) persist() {
	value, err := json.Marshal(s.items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to serialize saved words: %v\n", err)
		return
	}
	_, err = s.db.Exec(`INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, storageKey, string(value))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to persist saved words: %v\n", err)
	}
}

// Save bookmarks a word with its image and definition snippet, inserting at
// the front. Saving an identical (word, image) pair again is a no-op; the
// existing item is returned.
func (s *Store) Save(word, imageURL, definition string) SavedItem {
	for _, item := range s.items {
		if item.Word == word && item.ImageURL == imageURL {
			return item
		}
	}

	item := SavedItem{
		ID:         uuid.NewString(),
		Word:       word,
		ImageURL:   imageURL,
		Definition: definition,
		Timestamp:  time.Now().UnixMilli(),
	}
	s.items = append([]SavedItem{item}, s.items...)
	s.persist()
	return item
}

// Remove deletes an item by identifier. Removing an absent id is a no-op.
func (s *Store) Remove(id string) {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Items returns the collection, most-recent-first.
func (s *Store) Items() []SavedItem {
	out := make([]SavedItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of saved items.
func (s *Store) Len() int {
	return len(s.items)
}

// Contains reports whether the exact (word, image) pair is already saved.
func (s *Store) Contains(word, imageURL string) bool {
	for _, item := range s.items {
		if item.Word == word && item.ImageURL == imageURL {
			return true
		}
	}
	return false
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
