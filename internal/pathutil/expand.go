package pathutil

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Expand resolves $VARS and a leading "~" in a configured path.
// An empty path stays empty.
func Expand(path string) (string, error) {
	expanded := os.ExpandEnv(strings.TrimSpace(path))
	if expanded == "" {
		return "", nil
	}

	if rest, ok := strings.CutPrefix(expanded, "~"); ok && (rest == "" || strings.HasPrefix(rest, "/")) {
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		expanded = filepath.Join(home, rest)
	}

	return filepath.Clean(expanded), nil
}

func homeDir() (string, error) {
	candidates := []func() string{
		func() string {
			home, _ := os.UserHomeDir()
			return home
		},
		func() string {
			if u, err := user.Current(); err == nil {
				return u.HomeDir
			}
			return ""
		},
	}
	for _, candidate := range candidates {
		if home := strings.TrimSpace(candidate()); resolved(home) {
			return home, nil
		}
	}
	return "", fmt.Errorf("HOME is not set or not fully resolved")
}

func resolved(home string) bool {
	return home != "" && home != "~" && !strings.HasPrefix(home, "~/")
}
