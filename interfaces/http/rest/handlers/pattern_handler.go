package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"lucidlog-backend/application/commands"
	commandbus "lucidlog-backend/application/commands/bus"
	"lucidlog-backend/application/queries"
	querybus "lucidlog-backend/application/queries/bus"
	"lucidlog-backend/pkg/common"
	"lucidlog-backend/pkg/errors"
	"lucidlog-backend/pkg/utils"
)

// PatternHandler handles pattern-related HTTP requests
type PatternHandler struct {
	commandBus *commandbus.CommandBus
	queryBus   *querybus.QueryBus
	errors     *errors.ErrorHandler
	logger     *zap.Logger
}

// NewPatternHandler creates a new pattern handler
func NewPatternHandler(
	commandBus *commandbus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *errors.ErrorHandler,
	logger *zap.Logger,
) *PatternHandler {
	return &PatternHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		errors:     errorHandler,
		logger:     logger,
	}
}

// analyzeRequest is the POST /patterns/analyze body
type analyzeRequest struct {
	WindowDays int `json:"windowDays" validate:"omitempty,min=7,max=365"`
}

// deactivateRequest is the POST /patterns/deactivate body
type deactivateRequest struct {
	PatternType string `json:"patternType" validate:"required"`
	Name        string `json:"name" validate:"required,max=256"`
}

// GetPatterns handles GET /patterns
func (h *PatternHandler) GetPatterns(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.GetUserID(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	query := queries.GetPatternsQuery{
		UserID:     userID,
		WindowDays: parseWindowDays(r),
		Refresh:    parseRefresh(r),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// Analyze handles POST /patterns/analyze, forcing a recompute
func (h *PatternHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.GetUserID(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req analyzeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
			return
		}
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	query := queries.GetPatternsQuery{
		UserID:     userID,
		WindowDays: req.WindowDays,
		Refresh:    true,
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetInsights handles GET /patterns/insights
func (h *PatternHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.GetUserID(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	query := queries.GetPatternInsightsQuery{
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

// Deactivate handles POST /patterns/deactivate
func (h *PatternHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.GetUserID(r.Context())
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	var req deactivateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	cmd := commands.DeactivatePatternCommand{
		UserID:      userID,
		PatternType: req.PatternType,
		Name:        req.Name,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseRefresh reads the optional refresh query parameter, which bypasses
// the persisted-pattern check and forces a recompute. Anything but an
// explicit boolean true keeps the default behavior.
func parseRefresh(r *http.Request) bool {
	refresh, err := strconv.ParseBool(r.URL.Query().Get("refresh"))
	return err == nil && refresh
}

// parseWindowDays reads the optional window query parameter. Zero means
// "use the default window"; out-of-range values are rejected downstream
// by query validation.
func parseWindowDays(r *http.Request) int {
	raw := r.URL.Query().Get("window")
	if raw == "" {
		return 0
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return days
}
