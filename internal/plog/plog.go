// Package plog holds the package-level logger shared by the rule runner
// and the enumerator.
package plog

import (
	"github.com/rs/zerolog"
)

// Log is the package-level logger used throughout core and enumerate.
var Log zerolog.Logger

func init() {
	Log = zerolog.Nop()
}

// SetLogger installs l as the package-level logger.
func SetLogger(l zerolog.Logger) {
	Log = l
}

// GetLogger returns the current package-level logger.
func GetLogger() zerolog.Logger {
	return Log
}
