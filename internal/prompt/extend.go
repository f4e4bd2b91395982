package prompt

import (
	"fmt"

	"github.com/harunnryd/gippity/internal/aifunc"
	"github.com/harunnryd/gippity/internal/llm/contract"
)

const instructionTemplate = `FUNCTION: %s
INSTRUCTION: You are a function printer. You ONLY print the results of functions.
Nothing else. No commentary. Here is the input to the function: %s.
Print out what the function will return.`

// Extend wraps fn's description and the literal input into a single system message
// asking the model to print only what fn would return.
func Extend(fn aifunc.Function, input string) contract.Message {
	description := fn(input)

	return contract.Message{
		Role:    contract.RoleSystem,
		Content: fmt.Sprintf(instructionTemplate, description, input),
	}
}
