package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageValidate(t *testing.T) {
	assert.NoError(t, Message{Role: RoleSystem, Content: "FUNCTION: echo"}.Validate())
	assert.NoError(t, Message{Role: RoleAssistant, Content: "ok"}.Validate())
	assert.Error(t, Message{Role: "tool", Content: "x"}.Validate())
	assert.Error(t, Message{Role: RoleUser}.Validate())
}

func TestFirstContent(t *testing.T) {
	_, ok := ChatResponse{}.FirstContent()
	assert.False(t, ok)

	content, ok := ChatResponse{Choices: []Choice{
		{Message: Message{Role: RoleAssistant, Content: "first"}},
		{Message: Message{Role: RoleAssistant, Content: "second"}},
	}}.FirstContent()
	assert.True(t, ok)
	assert.Equal(t, "first", content)
}
