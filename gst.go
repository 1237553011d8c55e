//go:build darwin || linux

package gst

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var initOnce sync.Once

// Init loads the native GStreamer library and initializes the framework.
// It is safe to call multiple times; initialization happens once.
// Every other function in the package requires a successful Init first.
func Init() error {
	if err := loadGst(); err != nil {
		return fmt.Errorf("gstreamer not available: %w", err)
	}
	initOnce.Do(gstInitNative)
	return nil
}

// IsAvailable checks if the native GStreamer library can be loaded.
// With CGO this is always true since it links at compile time.
func IsAvailable() bool {
	return loadGst() == nil
}

// Version returns the GStreamer version string, or "" when the library
// is unavailable.
func Version() string {
	if err := Init(); err != nil {
		return ""
	}
	return gstVersionString()
}

// HasElement reports whether an element factory with the given name is
// registered, e.g. HasElement("playbin").
func HasElement(factory string) bool {
	if err := Init(); err != nil {
		return false
	}
	return gstElementFactoryFind(factory)
}

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger. It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the package logger. Call before any playback starts.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
