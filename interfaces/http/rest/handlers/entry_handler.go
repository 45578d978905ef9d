package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"lucidlog-backend/application/queries"
	querybus "lucidlog-backend/application/queries/bus"
	"lucidlog-backend/pkg/common"
	"lucidlog-backend/pkg/errors"
)

// EntryHandler handles journal entry HTTP requests. Entries are written
// by the companion app through its own pipeline; this service only reads.
type EntryHandler struct {
	queryBus *querybus.QueryBus
	errors   *errors.ErrorHandler
	logger   *zap.Logger
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(queryBus *querybus.QueryBus, errorHandler *errors.ErrorHandler, logger *zap.Logger) *EntryHandler {
	return &EntryHandler{
		queryBus: queryBus,
		errors:   errorHandler,
		logger:   logger,
	}
}

// ListEntries handles GET /entries
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.GetUserID(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	query := queries.ListEntriesQuery{
		UserID:     userID,
		WindowDays: parseWindowDays(r),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
