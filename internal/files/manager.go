package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// JournalFileName is the mirror file rewritten after every journal change.
	JournalFileName = "journal_entries.txt"
	// LogFileName receives the operator log.
	LogFileName = "jurnal.log"

	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manager centralizes where jurnal files live on disk and how they are written.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.jurnal (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// JournalPath resolves the mirror file. The file may not exist yet.
func (m *Manager) JournalPath() string {
	return filepath.Join(m.basePath, JournalFileName)
}

// LogPath resolves the default operator log file.
func (m *Manager) LogPath() string {
	return filepath.Join(m.basePath, LogFileName)
}

// OpenLog opens path for appending, creating parent directories as needed.
func (m *Manager) OpenLog(path string) (*os.File, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePermissions)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

// WriteLines replaces the contents of path with lines, one per line. The new
// contents land in a temp file in the same directory first and are renamed
// over path, so readers never see a partial file.
func (m *Manager) WriteLines(path string, lines []string) error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, "jurnal-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(temp.Name())

	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
