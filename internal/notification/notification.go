package notification

import (
	"context"
	"log/slog"
)

// Notifier announces account-lifecycle events to downstream systems. Today
// the only consumer is the structured log; a mail or queue based
// implementation can slot in behind the same interface.
type Notifier interface {
	UserRegistered(ctx context.Context, userID, email string)
}

// LoggerNotifier writes notifications to the logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// UserRegistered records a completed registration. The password never
// appears here; only the identifiers do.
func (n *LoggerNotifier) UserRegistered(_ context.Context, userID, email string) {
	if n == nil || n.logger == nil {
		return
	}
	n.logger.Info("user registered", "user_id", userID, "email", email)
}
