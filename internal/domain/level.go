package domain

// Level is a log macro severity. Trace is almost never enabled in a
// production build, Error almost always is, so an unguarded trace! call
// costs formatting work that is thrown away nearly every time.
type Level string

const (
	LevelTrace Level = "trace"
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Levels lists all log levels from most to least frequently disabled.
var Levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// ParseLevel returns the Level for a macro name like "debug".
func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError:
		return Level(s), true
	}
	return "", false
}

// Priority represents how urgently an unguarded call at a level should be
// fixed
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// FixPriority returns the remediation priority for the level.
func (l Level) FixPriority() Priority {
	switch l {
	case LevelTrace, LevelDebug:
		return PriorityCritical
	case LevelInfo:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Reason explains why the level carries its priority.
func (l Level) Reason() string {
	switch l {
	case LevelTrace:
		return "Always disabled in production"
	case LevelDebug:
		return "Usually disabled in production"
	case LevelInfo:
		return "Sometimes disabled"
	case LevelWarn:
		return "Usually enabled"
	default:
		return "Always enabled"
	}
}
