package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintAgentMessage(t *testing.T) {
	for _, category := range []Category{AICall, UnitTesting, Issue} {
		t.Run(category.String(), func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).PrintAgentMessage(category, "Managing Agent", "Test Statement")

			out := buf.String()
			assert.Contains(t, out, "Agent: Managing Agent:")
			assert.Contains(t, out, "Test Statement")
			assert.True(t, strings.HasSuffix(out, "\n"))
		})
	}
}

func TestCategoryStylesAreDistinct(t *testing.T) {
	require.Len(t, statementStyles, 3)

	ai := statementStyles[AICall].GetForeground()
	unit := statementStyles[UnitTesting].GetForeground()
	issue := statementStyles[Issue].GetForeground()

	assert.NotEqual(t, ai, unit)
	assert.NotEqual(t, ai, issue)
	assert.NotEqual(t, unit, issue)
	assert.NotEqual(t, agentStyle.GetForeground(), ai)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "ai_call", AICall.String())
	assert.Equal(t, "unit_testing", UnitTesting.String())
	assert.Equal(t, "issue", Issue.String())
	assert.Equal(t, "category(9)", Category(9).String())
}

func TestAskTrimsReply(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  a stock price api  \nsecond line\n"), &out)

	reply, err := p.Ask("What webserver are we building today?")
	require.NoError(t, err)
	assert.Equal(t, "a stock price api", reply)
	assert.Contains(t, out.String(), "What webserver are we building today?")

	reply, err = p.Ask("And then?")
	require.NoError(t, err)
	assert.Equal(t, "second line", reply)
}

func TestAskAcceptsFinalLineWithoutNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("todo app"), io.Discard)

	reply, err := p.Ask("?")
	require.NoError(t, err)
	assert.Equal(t, "todo app", reply)
}

func TestAskEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), io.Discard)

	_, err := p.Ask("?")
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
}
