package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lucidlog-backend/application/ports"
	"lucidlog-backend/application/queries"
	"lucidlog-backend/application/queries/bus"
	"lucidlog-backend/domain/core/valueobjects"
	pkgerrors "lucidlog-backend/pkg/errors"
)

// ListEntriesHandler serves ListEntriesQuery as a read-only passthrough
// to the entry snapshot provider.
type ListEntriesHandler struct {
	entries ports.EntryReader
	logger  *zap.Logger
}

// NewListEntriesHandler creates the handler
func NewListEntriesHandler(entries ports.EntryReader, logger *zap.Logger) *ListEntriesHandler {
	return &ListEntriesHandler{
		entries: entries,
		logger:  logger,
	}
}

// Handle implements bus.QueryHandler
func (h *ListEntriesHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.ListEntriesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid query type %T", query)
	}

	window, err := valueobjects.NewAnalysisWindow(q.WindowDays, time.Now())
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	entries, err := h.entries.ListEntries(ctx, q.UserID, window.Start(), window.End())
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list entries", err)
	}

	views := make([]queries.EntryView, len(entries))
	for i, e := range entries {
		views[i] = queries.NewEntryView(e)
	}

	return queries.ListEntriesResult{Entries: views}, nil
}
