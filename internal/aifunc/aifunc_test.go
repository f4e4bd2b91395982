package aifunc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesAreInputIndependent(t *testing.T) {
	functions := map[string]Function{
		"goal":      ConvertUserInputToGoal,
		"scope":     PrintProjectScope,
		"backend":   PrintBackendWebserverCode,
		"endpoints": PrintRESTAPIEndpoints,
	}

	for name, fn := range functions {
		t.Run(name, func(t *testing.T) {
			a := fn("build me a stock price api")
			b := fn("")
			assert.NotEmpty(t, a)
			assert.Equal(t, a, b)
		})
	}
}

func TestProjectScopeJSONFields(t *testing.T) {
	var scope ProjectScope
	err := json.Unmarshal([]byte(`{"is_crud_required":true,"is_user_login_and_logout":false,"is_external_urls_required":true}`), &scope)
	require.NoError(t, err)
	assert.Equal(t, ProjectScope{IsCRUDRequired: true, IsExternalURLsRequired: true}, scope)
}
