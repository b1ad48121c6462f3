package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation defaults applied by UseFile
const (
	DefaultLogMaxSize    = 10 // MB
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28 // days
)

// rotationLimit bounds one rotation field of the file logger
type rotationLimit struct {
	name     string
	value    int
	min, max int
	unit     string
}

// LoggerSettings selects the console or the rotating file logger and its level.
// Rotation fields only apply to the file logger.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// DefaultLoggerSettings returns an info-level console logger configuration.
// Logs go to stderr so command output on stdout stays clean.
func DefaultLoggerSettings() *LoggerSettings {
	return &LoggerSettings{
		LogLevel: LogLevelInfo,
		LogType:  LogTypeConsole,
	}
}

// UseFile switches to the file logger at path and fills unset rotation fields with defaults
func (s *LoggerSettings) UseFile(path string) {
	s.LogType = LogTypeFile
	s.FilePath = path
	if s.MaxSize == 0 {
		s.MaxSize = DefaultLogMaxSize
	}
	if s.MaxBackups == 0 {
		s.MaxBackups = DefaultLogMaxBackups
	}
	if s.MaxAge == 0 {
		s.MaxAge = DefaultLogMaxAge
	}
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}
	if s.FilePath == "" {
		return fmt.Errorf("file path is required for file logger")
	}

	limits := []rotationLimit{
		{name: "max size", value: s.MaxSize, min: 1, max: 100, unit: " MB"},
		{name: "max backups", value: s.MaxBackups, min: 1, max: 10},
		{name: "max age", value: s.MaxAge, min: 1, max: 365, unit: " days"},
	}
	for _, l := range limits {
		if l.value < l.min || l.value > l.max {
			return fmt.Errorf("%s must be between %d and %d%s, got %d", l.name, l.min, l.max, l.unit, l.value)
		}
	}

	return nil
}
