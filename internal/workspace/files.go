package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harunnryd/gippity/internal/config"
	gippityErrors "github.com/harunnryd/gippity/internal/errors"

	"github.com/natefinch/atomic"
)

// Files locates the code template and the two generated artifacts.
type Files struct {
	TemplatePath string
	BackendPath  string
	SchemaPath   string
}

func NewFiles(paths config.PathsConfig) *Files {
	return &Files{
		TemplatePath: paths.CodeTemplate,
		BackendPath:  paths.BackendCode,
		SchemaPath:   paths.APISchema,
	}
}

// ReadCodeTemplate returns the template contents verbatim.
func (f *Files) ReadCodeTemplate() (string, error) {
	if strings.TrimSpace(f.TemplatePath) == "" {
		return "", gippityErrors.Config("code template path is empty")
	}
	data, err := os.ReadFile(f.TemplatePath)
	if err != nil {
		return "", fmt.Errorf("read code template %s: %w", f.TemplatePath, err)
	}
	return string(data), nil
}

// SaveBackendCode replaces the backend source file with code.
func (f *Files) SaveBackendCode(code string) error {
	return writeFile(f.BackendPath, "backend code", code)
}

// SaveAPIEndpoints replaces the API schema file with the endpoint listing.
func (f *Files) SaveAPIEndpoints(endpoints string) error {
	return writeFile(f.SchemaPath, "api endpoints", endpoints)
}

func writeFile(path, what, content string) error {
	if strings.TrimSpace(path) == "" {
		return gippityErrors.Config(what + " path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", what, err)
	}
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("write %s to %s: %w", what, path, err)
	}
	return nil
}
