package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/svgspell"
)

// Ensure LoggingDocumentStore implements svgspell.DocumentStore.
var _ svgspell.DocumentStore = (*LoggingDocumentStore)(nil)

// LoggingDocumentStore wraps a DocumentStore with logging.
type LoggingDocumentStore struct {
	next   svgspell.DocumentStore
	logger *slog.Logger
}

// NewLoggingDocumentStore creates a new LoggingDocumentStore.
func NewLoggingDocumentStore(next svgspell.DocumentStore, logger *slog.Logger) *LoggingDocumentStore {
	return &LoggingDocumentStore{next: next, logger: logger}
}

// Open delegates to the wrapped store and logs the number of text nodes.
func (s *LoggingDocumentStore) Open(ctx context.Context, path string) (doc svgspell.Document, err error) {
	defer func(begin time.Time) {
		nodes := 0
		if doc != nil {
			nodes = len(doc.TextNodes())
		}
		s.logger.Info("open document",
			"path", path,
			"nodes", nodes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Open(ctx, path)
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) Save(ctx context.Context, path string, doc svgspell.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save document",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, path, doc)
}
