// Package logging wires logrus into sentry.
package logging

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook forwards logrus entries of the given levels to sentry.
type SentryHook struct {
	levels []logrus.Level
}

// NewSentryHook initializes the sentry client and returns a hook to be added
// to logrus.
func NewSentryHook(o sentry.ClientOptions, levels ...logrus.Level) (*SentryHook, error) {
	if err := sentry.Init(o); err != nil {
		return nil, fmt.Errorf("failed to init sentry: %w", err)
	}

	return &SentryHook{levels: levels}, nil
}

// Levels ...
func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

// Fire ...
func (h *SentryHook) Fire(e *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = sentryLevel(e.Level)
	event.Message = e.Message
	event.Timestamp = e.Time

	for k, v := range e.Data {
		if err, ok := v.(error); ok {
			event.Extra[k] = err.Error()
			continue
		}
		event.Extra[k] = v
	}

	sentry.CaptureEvent(event)

	// fatal and panic terminate the process, flush before that happens.
	if e.Level <= logrus.FatalLevel {
		sentry.Flush(2 * time.Second)
	}

	return nil
}

func sentryLevel(l logrus.Level) sentry.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.DebugLevel, logrus.TraceLevel:
		return sentry.LevelDebug
	default:
		return sentry.LevelInfo
	}
}
