package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var debugMode bool

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		debugMode = false
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)

	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}
	debugMode = true

	cleanup = func() {
		tf.Close()
		f.Close()
		log.SetOutput(io.Discard)
		debugMode = false
	}
	return cleanup, nil
}

// IsDebugMode reports whether a debug log file is attached.
func IsDebugMode() bool {
	return debugMode
}

func Debug(msg string) {
	if debugMode {
		output("DEBUG", msg)
	}
}

func Debugf(format string, args ...any) {
	if debugMode {
		output("DEBUG", fmt.Sprintf(format, args...))
	}
}

func Infof(format string, args ...any) {
	output("INFO", fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	output("WARN", fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) {
	output("ERROR", fmt.Sprintf(format, args...))
}

// calldepth 3 points Lshortfile at the caller of Debugf/Infof/...
func output(level, msg string) {
	log.Output(3, level+" "+msg)
}
