package journal

import (
	"fmt"

	"github.com/faizmokh/jurnal/internal/files"
)

// FileMirror writes the journal as one Line per entry to a flat text file.
type FileMirror struct {
	manager *files.Manager
	path    string
}

// NewFileMirror wires a mirror that rewrites the manager's journal file.
func NewFileMirror(manager *files.Manager) *FileMirror {
	return &FileMirror{manager: manager, path: manager.JournalPath()}
}

// Write replaces the file contents with the given entries.
func (m *FileMirror) Write(entries []Entry) error {
	if m == nil || m.manager == nil {
		return fmt.Errorf("mirror not initialized with file manager")
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.Line())
	}
	if err := m.manager.WriteLines(m.path, lines); err != nil {
		return fmt.Errorf("write journal file: %w", err)
	}
	return nil
}

// Location returns the absolute path of the mirror file.
func (m *FileMirror) Location() string {
	return m.path
}
