// Package constants provides shared constants used across cwsearch components.
package constants

// Channel buffer sizes
const (
	// SignalChannelBuffer is the buffer size for OS signal channels.
	// Signals are infrequent and must never block the sender.
	SignalChannelBuffer = 1
)

// Configuration
const (
	// ConfigFileName is the base name of the config file looked up in $HOME.
	ConfigFileName = ".cws"

	// EnvPrefix prefixes environment overrides, e.g. CWS_SEARCH_WORKERS.
	EnvPrefix = "CWS"
)

// Search defaults
const (
	// DefaultMaxInputSize caps the size of a single target file.
	// The whole file is held in memory while it is scanned.
	DefaultMaxInputSize = "256M"

	// DefaultWorkers is the default number of scan goroutines per file.
	DefaultWorkers = 1

	// MaxWorkers bounds --workers.
	MaxWorkers = 256
)
