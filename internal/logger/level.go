package logger

import (
	"github.com/pkg/errors"
	"strings"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Level -linecomment

// Level is ordered by verbosity, each level includes the ones before it.
type Level int

const (
	LevelOff   Level = iota // OFF
	LevelError              // ERROR
	LevelWarn               // WARN
	LevelInfo               // INFO
	LevelDebug              // DEBUG
	LevelTrace              // TRACE
)

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for l := LevelOff; l <= LevelTrace; l++ {
		if l.String() == name {
			return l, nil
		}
	}
	return LevelOff, errors.Errorf("invalid log level: %q", s)
}

// Enables reports whether messages at other are written when l is configured.
func (l Level) Enables(other Level) bool {
	return other != LevelOff && other <= l
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
