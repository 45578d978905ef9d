package commands

import (
	"lucidlog-backend/domain/core/entities"
	pkgerrors "lucidlog-backend/pkg/errors"
)

// DeactivatePatternCommand marks one persisted pattern inactive. This is
// the explicit external action; analysis runs never deactivate patterns.
type DeactivatePatternCommand struct {
	UserID      string
	PatternType string
	Name        string
}

// Validate validates the DeactivatePatternCommand
func (c DeactivatePatternCommand) Validate() error {
	if c.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	if c.Name == "" {
		return pkgerrors.NewValidationError("pattern name is required")
	}
	if _, err := entities.ParsePatternType(c.PatternType); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
