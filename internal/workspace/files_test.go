package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harunnryd/gippity/internal/config"
	gippityErrors "github.com/harunnryd/gippity/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFiles(t *testing.T) *Files {
	t.Helper()
	dir := t.TempDir()
	return NewFiles(config.PathsConfig{
		CodeTemplate: filepath.Join(dir, "webtemplate", "src", "code_template.rs"),
		BackendCode:  filepath.Join(dir, "webtemplate", "src", "main.rs"),
		APISchema:    filepath.Join(dir, "schemas", "api_schema.json"),
	})
}

func TestReadCodeTemplate(t *testing.T) {
	f := newTestFiles(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(f.TemplatePath), 0755))

	template := "use actix_web::{web, App};\n\nfn main() {}\n"
	require.NoError(t, os.WriteFile(f.TemplatePath, []byte(template), 0644))

	got, err := f.ReadCodeTemplate()
	require.NoError(t, err)
	assert.Equal(t, template, got)
}

func TestReadCodeTemplateMissing(t *testing.T) {
	f := newTestFiles(t)

	_, err := f.ReadCodeTemplate()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveBackendCodeOverwrites(t *testing.T) {
	f := newTestFiles(t)

	require.NoError(t, f.SaveBackendCode("first version with more text"))
	require.NoError(t, f.SaveBackendCode("second"))

	data, err := os.ReadFile(f.BackendPath)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSaveAPIEndpointsCreatesParentDirectory(t *testing.T) {
	f := newTestFiles(t)

	endpoints := `[{"route":"/todos","method":"GET"}]`
	require.NoError(t, f.SaveAPIEndpoints(endpoints))

	data, err := os.ReadFile(f.SchemaPath)
	require.NoError(t, err)
	assert.Equal(t, endpoints, string(data))
}

func TestSaveWithEmptyPath(t *testing.T) {
	f := &Files{}

	err := f.SaveBackendCode("code")
	assert.ErrorIs(t, err, gippityErrors.ErrConfig)

	err = f.SaveAPIEndpoints("[]")
	assert.ErrorIs(t, err, gippityErrors.ErrConfig)

	_, err = f.ReadCodeTemplate()
	assert.ErrorIs(t, err, gippityErrors.ErrConfig)
}
