package logger

import (
	"fmt"
	"io"
	"log"
)

type logger struct {
	errorLogger *log.Logger
	warnLogger  *log.Logger
	infoLogger  *log.Logger
	debugLogger *log.Logger
	traceLogger *log.Logger
}

func (l *logger) Error(v ...any) { l.output(l.errorLogger, fmt.Sprintln(v...)) }
func (l *logger) Warn(v ...any)  { l.output(l.warnLogger, fmt.Sprintln(v...)) }
func (l *logger) Info(v ...any)  { l.output(l.infoLogger, fmt.Sprintln(v...)) }
func (l *logger) Debug(v ...any) { l.output(l.debugLogger, fmt.Sprintln(v...)) }
func (l *logger) Trace(v ...any) { l.output(l.traceLogger, fmt.Sprintln(v...)) }

func (l *logger) Errorf(format string, v ...any) {
	l.output(l.errorLogger, fmt.Sprintf(format, v...))
}

func (l *logger) Warnf(format string, v ...any) {
	l.output(l.warnLogger, fmt.Sprintf(format, v...))
}

func (l *logger) Infof(format string, v ...any) {
	l.output(l.infoLogger, fmt.Sprintf(format, v...))
}

func (l *logger) Debugf(format string, v ...any) {
	l.output(l.debugLogger, fmt.Sprintf(format, v...))
}

func (l *logger) Tracef(format string, v ...any) {
	l.output(l.traceLogger, fmt.Sprintf(format, v...))
}

// output skips itself and the exported method so Lshortfile reports the caller.
func (l *logger) output(target *log.Logger, s string) {
	if target != nil {
		_ = target.Output(3, s)
	}
}

// NewLogger enables every level up to and including level, all writing to out.
func NewLogger(level Level, out io.Writer) *logger {
	flag := log.LstdFlags | log.Lshortfile
	newIfEnabled := func(l Level, prefix string) *log.Logger {
		if !level.Enables(l) {
			return nil
		}
		return log.New(out, prefix, flag)
	}

	return &logger{
		errorLogger: newIfEnabled(LevelError, "ERROR:"),
		warnLogger:  newIfEnabled(LevelWarn, "WARN :"),
		infoLogger:  newIfEnabled(LevelInfo, "INFO :"),
		debugLogger: newIfEnabled(LevelDebug, "DEBUG:"),
		traceLogger: newIfEnabled(LevelTrace, "TRACE:"),
	}
}
