package validate

import (
	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/models"
)

// transitions lists the statuses reachable from each status on request.
// Completed and Cancelled are terminal.
var transitions = map[models.EventStatus][]models.EventStatus{
	models.EventStatusActive: {models.EventStatusFull, models.EventStatusCancelled, models.EventStatusCompleted},
	models.EventStatusFull:   {models.EventStatusActive, models.EventStatusCancelled, models.EventStatusCompleted},
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to models.EventStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition checks a requested status change.
func Transition(from, to models.EventStatus) error {
	if !to.Valid() {
		return apperr.Newf(apperr.CodeStatusInvalid, "unknown status %q", to)
	}
	if !CanTransition(from, to) {
		return apperr.Newf(apperr.CodeInvalidTransition, "cannot move event from %s to %s", from, to)
	}
	return nil
}
