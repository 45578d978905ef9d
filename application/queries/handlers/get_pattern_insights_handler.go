package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lucidlog-backend/application/analysis"
	"lucidlog-backend/application/queries"
	"lucidlog-backend/application/queries/bus"
	"lucidlog-backend/domain/insights"
)

// GetPatternInsightsHandler serves GetPatternInsightsQuery: patterns from
// the engine with their insights derived at read time.
type GetPatternInsightsHandler struct {
	engine *analysis.Engine
	logger *zap.Logger
}

// NewGetPatternInsightsHandler creates the handler
func NewGetPatternInsightsHandler(engine *analysis.Engine, logger *zap.Logger) *GetPatternInsightsHandler {
	return &GetPatternInsightsHandler{
		engine: engine,
		logger: logger,
	}
}

// Handle implements bus.QueryHandler
func (h *GetPatternInsightsHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	q, ok := query.(queries.GetPatternInsightsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid query type %T", query)
	}

	patterns, err := h.engine.AnalyzePatterns(ctx, q.UserID, analysis.RunOptions{
		WindowDays: q.WindowDays,
	})
	if err != nil {
		return nil, err
	}

	views := make([]queries.PatternInsightView, 0, len(patterns))
	for _, p := range patterns {
		if !p.IsActive() {
			continue
		}
		views = append(views, queries.PatternInsightView{
			Pattern: queries.NewPatternView(p),
			Insight: insights.Derive(p),
		})
	}

	return queries.GetPatternInsightsResult{Insights: views}, nil
}
