package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const backupTimeFormat = "2006-01-02-15-04-05.000"

// FileWriter appends to a log file and rotates it once it would grow past
// maxSize. Rotated files are renamed with a timestamp suffix and only the
// newest maxBackups are kept.
type FileWriter struct {
	mu          sync.Mutex
	path        string
	maxSize     int64 // bytes
	maxBackups  int
	currentFile *os.File
	currentSize int64
	now         func() time.Time
}

// NewFileWriter opens (or creates) path for appending.
func NewFileWriter(path string, maxSizeMB, maxBackups int) (*FileWriter, error) {
	if maxSizeMB < 1 {
		maxSizeMB = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := &FileWriter{
		path:       path,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
		now:        time.Now,
	}
	if err := w.openCurrentFile(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *FileWriter) openCurrentFile() error {
	w.currentSize = 0
	if info, err := os.Stat(w.path); err == nil {
		w.currentSize = info.Size()
	}

	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	w.currentFile = file
	return nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentFile == nil {
		if err := w.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if w.currentSize > 0 && w.currentSize+int64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.currentFile.Write(p)
	w.currentSize += int64(n)
	return n, err
}

func (w *FileWriter) rotate() error {
	if err := w.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	w.currentFile = nil

	backup := w.path + "." + w.now().Format(backupTimeFormat)
	if err := os.Rename(w.path, backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	w.cleanup()
	return w.openCurrentFile()
}

// Backups lists rotated files, oldest first.
func (w *FileWriter) Backups() ([]string, error) {
	dir := filepath.Dir(w.path)
	prefix := filepath.Base(w.path) + "."

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var backups []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		backups = append(backups, filepath.Join(dir, entry.Name()))
	}
	// The timestamp suffix sorts lexically.
	slices.Sort(backups)
	return backups, nil
}

func (w *FileWriter) cleanup() {
	if w.maxBackups <= 0 {
		return
	}
	backups, err := w.Backups()
	if err != nil || len(backups) <= w.maxBackups {
		return
	}
	for _, old := range backups[:len(backups)-w.maxBackups] {
		if err := os.Remove(old); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
		}
	}
}

// Close closes the current log file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.currentFile == nil {
		return nil
	}
	err := w.currentFile.Close()
	w.currentFile = nil
	return err
}
