package service

import (
	"log/slog"

	"github.com/mmynk/tal3a/internal/apperr"
)

// fail logs a failed call and converts err for the client. Domain rejections
// are routine and logged at warn; anything else is an error.
func fail(logger *slog.Logger, op string, err error, attrs ...any) error {
	attrs = append(attrs, "code", apperr.CodeOf(err), "error", err)
	if apperr.IsKind(err, apperr.KindInternal) {
		logger.Error(op+" failed", attrs...)
	} else {
		logger.Warn(op+" rejected", attrs...)
	}
	return apperr.ToConnect(err)
}
