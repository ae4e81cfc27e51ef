package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// StdoutAdapter writes log entries to stdout in json or text format
type StdoutAdapter struct {
	name   string
	format string
	mu     sync.Mutex
}

// NewStdoutAdapter creates a new stdout adapter
func NewStdoutAdapter(name, format string) *StdoutAdapter {
	return &StdoutAdapter{name: name, format: format}
}

// Write writes a log entry to stdout
func (a *StdoutAdapter) Write(entry *LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	output, err := formatEntry(entry, a.format)
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	_, err = fmt.Fprintln(os.Stdout, output)
	return err
}

// Close closes the adapter (no-op for stdout)
func (a *StdoutAdapter) Close() error {
	return nil
}

// Name returns the name of the adapter
func (a *StdoutAdapter) Name() string {
	return a.name
}

// FileAdapter appends log entries to a file
type FileAdapter struct {
	name   string
	format string
	file   *os.File
	mu     sync.Mutex
}

// NewFileAdapter creates a new file adapter, creating parent directories as needed
func NewFileAdapter(name, format, path string) (*FileAdapter, error) {
	if path == "" {
		return nil, fmt.Errorf("file_path is required for file adapter")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileAdapter{name: name, format: format, file: file}, nil
}

// Write appends a log entry to the file
func (a *FileAdapter) Write(entry *LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	output, err := formatEntry(entry, a.format)
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	_, err = fmt.Fprintln(a.file, output)
	return err
}

// Close closes the underlying file
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.file.Close()
}

// Name returns the name of the adapter
func (a *FileAdapter) Name() string {
	return a.name
}

func formatEntry(entry *LogEntry, format string) (string, error) {
	switch strings.ToLower(format) {
	case "text":
		return formatText(entry), nil
	default:
		return formatJSON(entry)
	}
}

func formatJSON(entry *LogEntry) (string, error) {
	logData := map[string]interface{}{
		"level":   entry.Level.String(),
		"message": entry.Message,
		"time":    entry.Timestamp.Format(time.RFC3339),
	}

	for k, v := range entry.Fields {
		logData[k] = v
	}

	data, err := json.Marshal(logData)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func formatText(entry *LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s",
		entry.Timestamp.Format(time.RFC3339),
		strings.ToUpper(entry.Level.String()),
		entry.Message,
	)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
		}
	}

	return b.String()
}
