package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "snapsphere-debug.log"

// Global debug logger. It discards everything until InitDebugLogger enables it.
var (
	debugLog  = newDiscardLogger()
	debugFile *os.File
)

func newDiscardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = newDiscardLogger()
		return nil
	}

	// Fixed name in the working directory so it is easy to find.
	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	log := logrus.New()
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "15:04:05.000"})

	debugLog = log
	debugFile = f
	debugLog.WithFields(logrus.Fields{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	}).Debug("DEBUG_START")
	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugFile == nil {
		return
	}
	debugLog.WithField("time", time.Now().Format(time.RFC3339)).Debug("DEBUG_END")
	_ = debugFile.Close()
	debugFile = nil
	debugLog = newDiscardLogger()
}

// DebugLogger returns the logger shared by the TUI and the API client.
func DebugLogger() logrus.FieldLogger {
	return debugLog
}

func debugEnabled() bool {
	return debugLog.IsLevelEnabled(logrus.DebugLevel)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.WithFields(logrus.Fields{
		"key":  msg.String(),
		"type": msg.Type.String(),
	}).Debug("KEY_PRESS")
}

// LogMouse logs a mouse click.
func LogMouse(msg tea.MouseMsg, target string) {
	if !debugEnabled() {
		return
	}
	debugLog.WithFields(logrus.Fields{
		"x":      msg.X,
		"y":      msg.Y,
		"button": tea.MouseEvent(msg).String(),
		"target": target,
	}).Debug("MOUSE_CLICK")
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.WithFields(logrus.Fields{
		"from":   from.String(),
		"to":     to.String(),
		"reason": reason,
	}).Debug("MODE_CHANGE")
}

// LogFetch logs a step of a photo fetch.
func LogFetch(event string, seq uint64, term string, fields logrus.Fields) {
	if !debugEnabled() {
		return
	}
	entry := debugLog.WithFields(logrus.Fields{
		"seq":  seq,
		"term": term,
	})
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Debug(event)
}

// LogThemeToggle logs a theme switch.
func LogThemeToggle(mode, themeName string) {
	if !debugEnabled() {
		return
	}
	debugLog.WithFields(logrus.Fields{
		"mode":  mode,
		"theme": themeName,
	}).Debug("THEME_TOGGLE")
}

// LogError logs an error with context.
func LogError(context string, err error) {
	if !debugEnabled() || err == nil {
		return
	}
	debugLog.WithError(err).WithField("context", context).Debug("ERROR")
}
