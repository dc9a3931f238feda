package auditlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

var header = []string{"action", "handle", "src", "dst"}

// Writer appends move rows to a CSV audit file.
type Writer struct {
	file *os.File
	csv  *csv.Writer
}

// Open creates or appends to the audit file at path, creating parent
// directories as needed. The header is written only for a fresh file.
func Open(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory %q: %w", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log %q: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat audit log: %w", err)
	}

	w := &Writer{file: file, csv: csv.NewWriter(file)}
	if info.Size() == 0 {
		if err := w.csv.Write(header); err != nil {
			file.Close()
			return nil, fmt.Errorf("write audit header: %w", err)
		}
	}
	return w, nil
}

// Record appends one move row.
func (w *Writer) Record(action, handle, src, dst string) error {
	return w.csv.Write([]string{action, handle, src, dst})
}

// Close flushes buffered rows and closes the file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("flush audit log: %w", err)
	}
	return w.file.Close()
}
