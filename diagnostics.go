package typedenv

import "log/slog"

// LogPolicy decides whether resolution diagnostics are emitted.
// A nil policy suppresses all diagnostics.
type LogPolicy interface {
	enabled(mode Mode) bool
}

type logAlways struct{}

// LogAlways emits a warning on every failure-path resolution event,
// regardless of mode.
var LogAlways LogPolicy = logAlways{}

func (logAlways) enabled(mode Mode) bool { return true }

type logByMode map[Mode]bool

// LogByMode emits warnings only when the store's current mode maps to true.
// A missing or unrecognized mode suppresses diagnostics.
func LogByMode(entries map[Mode]bool) LogPolicy {
	return logByMode(entries)
}

func (f logByMode) enabled(mode Mode) bool {
	return f[mode]
}

// Resolution events observed by diagnostics.
const (
	eventNotFound     = "not_found"
	eventFallbackUsed = "fallback_used"
	eventExhausted    = "fallback_exhausted"
)

// diagnostics observes resolution outcomes and conditionally warns.
// It is a side channel only: it never errors and never affects resolution.
type diagnostics struct {
	policy  LogPolicy
	logger  *slog.Logger
	store   Store
	modeKey string
}

// observe emits a warning for event if the policy allows it under the store's
// current mode. The mode is re-read at observation time, matching the
// resolver's freshness rule.
func (d *diagnostics) observe(event, key, detail string) {
	if d.policy == nil {
		return
	}
	mode, _ := d.store.Lookup(d.modeKey)
	if !d.policy.enabled(Mode(mode)) {
		return
	}

	logger := d.logger
	if logger == nil {
		logger = slog.Default()
	}

	switch event {
	case eventNotFound:
		logger.Warn("environment key not found", "key", key)
	case eventFallbackUsed:
		logger.Warn("environment key resolved from fallback", "key", key, "value", detail)
	case eventExhausted:
		logger.Warn("fallback yielded no value for environment key", "key", key)
	}
}
