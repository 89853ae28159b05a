package services

import "tubetrans/internal/logger"

// LogInfo logs an informational message through the application logger.
func LogInfo(format string, args ...interface{}) {
	logger.Info(format, args...)
}

// LogDebug logs a debug message through the application logger.
func LogDebug(format string, args ...interface{}) {
	logger.Debug(format, args...)
}

// LogWarn logs a warning through the application logger.
func LogWarn(format string, args ...interface{}) {
	logger.Warn(format, args...)
}

// LogError logs an error message through the application logger.
func LogError(format string, args ...interface{}) {
	logger.Error(format, args...)
}
