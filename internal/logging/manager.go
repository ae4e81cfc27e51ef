package logging

import (
	"fmt"
	"sync"

	"jobsphere-ai/internal/config"
)

var (
	globalLogger *MultiLogger
	globalMu     sync.RWMutex
)

// InitializeLogging configures the global logger from application configuration
func InitializeLogging(cfg *config.Config) error {
	logger := NewMultiLogger()
	logger.SetLevel(ParseLogLevel(cfg.Logging.Level))

	if len(cfg.Logging.Adapters) > 0 {
		for _, ac := range cfg.Logging.Adapters {
			if !ac.Enabled {
				continue
			}

			adapter, err := createAdapter(ac.Name, ac.Type, ac.Options, cfg.Logging.Format)
			if err != nil {
				return fmt.Errorf("failed to create adapter %s: %w", ac.Name, err)
			}
			logger.AddAdapter(adapter)
		}
	} else {
		// Fallback: plain stdout adapter from the legacy settings
		logger.AddAdapter(NewStdoutAdapter("stdout", cfg.Logging.Format))
	}

	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()

	return nil
}

func createAdapter(name, adapterType string, options map[string]interface{}, defaultFormat string) (LogAdapter, error) {
	format := defaultFormat
	if f, ok := options["format"].(string); ok && f != "" {
		format = f
	}

	switch adapterType {
	case "stdout":
		return NewStdoutAdapter(name, format), nil
	case "file":
		path, _ := options["file_path"].(string)
		return NewFileAdapter(name, format, path)
	default:
		return nil, fmt.Errorf("unsupported adapter type: %s", adapterType)
	}
}

// GetGlobalLogger returns the global logger, lazily creating a stdout logger
// when logging was never initialized (tests, early startup)
func GetGlobalLogger() Logger {
	globalMu.RLock()
	if globalLogger != nil {
		defer globalMu.RUnlock()
		return globalLogger
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = NewMultiLogger()
		globalLogger.AddAdapter(NewStdoutAdapter("stdout", "json"))
	}
	return globalLogger
}

// LogWithRequestID returns a logger scoped to a request ID
func LogWithRequestID(requestID string) Logger {
	return GetGlobalLogger().WithField("request_id", requestID)
}

// CloseLogging flushes and closes the global logger
func CloseLogging() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger == nil {
		return nil
	}
	err := globalLogger.Close()
	globalLogger = nil
	return err
}
