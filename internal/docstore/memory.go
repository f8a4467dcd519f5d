package docstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	chat_errors "chat-store/pkg/errors"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used by tests and local runs.
// A single mutex stands in for the backend's batch atomicity.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Document)}
}

func (s *MemoryStore) GetDocument(_ context.Context, path string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[path]
	if !ok {
		return Document{}, chat_errors.ErrNotFound
	}
	return doc, nil
}

func (s *MemoryStore) AddDocument(_ context.Context, collection string, data map[string]any) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := Document{
		ID:        s.GenerateID(collection),
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	doc.Path = collection + "/" + doc.ID
	if _, exists := s.docs[doc.Path]; exists {
		return Document{}, chat_errors.ErrAlreadyExists
	}
	s.docs[doc.Path] = doc
	return doc, nil
}

func (s *MemoryStore) QueryCollection(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := collection + "/"
	var docs []Document
	for path, doc := range s.docs {
		rest, ok := strings.CutPrefix(path, prefix)
		if ok && rest != "" && !strings.Contains(rest, "/") {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].Path < docs[j].Path
		}
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})
	return docs, nil
}

func (s *MemoryStore) BatchDelete(_ context.Context, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, path := range paths {
		delete(s.docs, path)
	}
	return nil
}

func (s *MemoryStore) GenerateID(_ string) string {
	return uuid.NewString()
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close() {}

// Len reports the number of stored documents. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
