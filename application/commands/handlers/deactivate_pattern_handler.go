package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lucidlog-backend/application/commands"
	"lucidlog-backend/application/commands/bus"
	"lucidlog-backend/application/ports"
	"lucidlog-backend/domain/core/entities"
)

// DeactivatePatternHandler flips a pattern's active flag off
type DeactivatePatternHandler struct {
	patterns ports.PatternRepository
	logger   *zap.Logger
}

// NewDeactivatePatternHandler creates the handler
func NewDeactivatePatternHandler(patterns ports.PatternRepository, logger *zap.Logger) *DeactivatePatternHandler {
	return &DeactivatePatternHandler{
		patterns: patterns,
		logger:   logger,
	}
}

// Handle implements bus.CommandHandler
func (h *DeactivatePatternHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.DeactivatePatternCommand)
	if !ok {
		return fmt.Errorf("invalid command type %T", cmd)
	}

	patternType, err := entities.ParsePatternType(c.PatternType)
	if err != nil {
		return err
	}

	if err := h.patterns.Deactivate(ctx, c.UserID, patternType, c.Name); err != nil {
		return err
	}

	h.logger.Info("Pattern deactivated",
		zap.String("userID", c.UserID),
		zap.String("type", c.PatternType),
		zap.String("name", c.Name),
	)
	return nil
}
