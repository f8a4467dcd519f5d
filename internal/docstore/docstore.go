package docstore

import (
	"context"
	"time"
)

// Document is a single entry in the hierarchical store. Path is the full
// slash-separated location ("users/u1/chats/c1/messages/m1"); ID is its last
// segment. Data is the schema-less payload; CreatedAt is assigned by the
// store at write time, never by the caller.
type Document struct {
	ID        string
	Path      string
	Data      map[string]any
	CreatedAt time.Time
}

// Store is the document-store client surface the operations depend on.
// Collections nest under documents by path; a collection does not need to
// exist before documents are added to it.
type Store interface {
	// GetDocument returns the document at path, or chat_errors.ErrNotFound.
	GetDocument(ctx context.Context, path string) (Document, error)

	// AddDocument writes data as a new document with a store-generated
	// identifier under collection and returns the stored document.
	AddDocument(ctx context.Context, collection string, data map[string]any) (Document, error)

	// QueryCollection returns every document directly under collection.
	// Order is whatever the backend yields; callers must not depend on it.
	QueryCollection(ctx context.Context, collection string) ([]Document, error)

	// BatchDelete removes all listed documents in one atomic commit.
	// An empty path list commits trivially.
	BatchDelete(ctx context.Context, paths []string) error

	// GenerateID mints a fresh document identifier scoped to collection
	// without writing anything.
	GenerateID(collection string) string

	Ping(ctx context.Context) error
	Close()
}
