package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName is the journal home created under the user's home directory.
	DefaultDirName = ".jurnal"
	// HomeEnv names the variable that relocates the journal home.
	HomeEnv = "JURNAL_HOME"
)

// ResolveBasePath returns the journal home: $JURNAL_HOME when it is set and
// not blank, otherwise ~/.jurnal. A leading "~" or "~/" in the override is
// expanded; "~user" forms are left alone.
func ResolveBasePath() (string, error) {
	override := strings.TrimSpace(os.Getenv(HomeEnv))
	if override != "" {
		return expandHome(override)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
