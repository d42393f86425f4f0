/**
 * @file logger
 * @brief Logging
 *
 * Provides function Init, which initializes the package-level logger, and
 * the Log object used throughout the server.
 */

package logger

import (
	// System
	"errors"
	"fmt"
	"os"

	// Third-party
	"github.com/op/go-logging"
)

/// Logger object
var Log = logging.MustGetLogger("hangman") // Ignore error because it is impossible that it happened

/**
 * @brief Initialize the logger with a given format string and optional file
 * @param[in] format Logger format string (go-logging format spec)
 * @param[in] path Path to a log file; stderr is used when empty
 */
func Init(format string, path string) error {
	file := os.Stderr
	if path != "" {
		var err error
		file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return Trace(err, "Error occured while opening log file")
		}
	}

	backend := logging.NewLogBackend(file, "> ", 0)

	formatter, err := logging.NewStringFormatter(format)
	if err != nil {
		return Trace(err, "Error occured while starting logger")
	}

	log := logging.NewBackendFormatter(backend, formatter)
	logging.SetBackend(log)

	return nil
}

func Trace(err error, msgs ...interface{}) error {
	return errors.New(fmt.Sprintf("%s (%s)", fmt.Sprint(msgs...), err.Error()))
}

func Tracef(err error, format string, msgs ...interface{}) error {
	return Trace(err, fmt.Sprintf(format, msgs...))
}
