package logging

// Leveled logging for pkmforge

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

// Logger writes leveled messages to stdout/stderr and optionally to a file.
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	file    *os.File
	fileLog *log.Logger
	stdout  *log.Logger
	stderr  *log.Logger
}

// NewLogger creates a new logger. logFile may be empty for console-only
// logging; when set, output is appended so repeated runs share one file.
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	l := &Logger{
		level:  level,
		stdout: log.New(os.Stdout, "", 0),
		stderr: log.New(os.Stderr, "", 0),
	}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}

	return l, nil
}

// Close closes the logger and flushes all data.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message.
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level >= LogLevelError {
		l.write(fmt.Sprintf("ERROR: "+format, v...), true)
	}
}

// Info logs an info message.
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level >= LogLevelInfo {
		l.write(fmt.Sprintf("INFO: "+format, v...), false)
	}
}

// Verbose logs a verbose message.
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.level >= LogLevelVerbose {
		l.write(fmt.Sprintf("VERBOSE: "+format, v...), false)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level >= LogLevelDebug {
		l.write(fmt.Sprintf("DEBUG: "+format, v...), false)
	}
}

func (l *Logger) write(msg string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// The log file gets everything that passed the level check.
	if l.fileLog != nil {
		l.fileLog.Println(msg)
	}

	if isError {
		l.stderr.Println(msg)
	} else if l.level >= LogLevelVerbose {
		l.stdout.Println(msg)
	}
}

// SetLevel sets the logging level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current logging level.
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogInjection logs one write-record exchange: who, where, how many bytes,
// and the resulting device status (0 = OK).
func (l *Logger) LogInjection(peer string, address uint64, length int, status uint32) {
	msg := fmt.Sprintf("write %d bytes at 0x%X from/to %s (status: 0x%08X)", length, address, peer, status)
	if status == 0 {
		l.Verbose(msg)
	} else {
		l.Info(msg)
	}
}

// LogHex logs hex data (for debug level).
func (l *Logger) LogHex(label string, data []byte) {
	if l.level < LogLevelDebug {
		return
	}
	hexStr := fmt.Sprintf("%x", data)
	formatted := ""
	for i := 0; i < len(hexStr); i += 2 {
		if i > 0 {
			formatted += " "
		}
		if i+2 <= len(hexStr) {
			formatted += hexStr[i : i+2]
		} else {
			formatted += hexStr[i:]
		}
	}
	l.Debug("%s: %s", label, formatted)
}

// LevelFromFlags maps the usual --verbose/--debug flags to a level.
func LevelFromFlags(verbose, debug bool) LogLevel {
	switch {
	case debug:
		return LogLevelDebug
	case verbose:
		return LogLevelVerbose
	default:
		return LogLevelInfo
	}
}
