package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lucidlog-backend/application/analysis"
	"lucidlog-backend/application/queries"
	"lucidlog-backend/application/queries/bus"
)

// GetPatternsHandler serves GetPatternsQuery by running the analysis
// engine (which internally decides between cached and recomputed results).
type GetPatternsHandler struct {
	engine *analysis.Engine
	logger *zap.Logger
}

// NewGetPatternsHandler creates the handler
func NewGetPatternsHandler(engine *analysis.Engine, logger *zap.Logger) *GetPatternsHandler {
	return &GetPatternsHandler{
		engine: engine,
		logger: logger,
	}
}

// Handle implements bus.QueryHandler
func (h *GetPatternsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetPatternsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid query type %T", query)
	}

	patterns, err := h.engine.AnalyzePatterns(ctx, q.UserID, analysis.RunOptions{
		WindowDays: q.WindowDays,
		Refresh:    q.Refresh,
	})
	if err != nil {
		return nil, err
	}

	return queries.GetPatternsResult{
		Patterns: queries.NewPatternViews(patterns),
	}, nil
}
