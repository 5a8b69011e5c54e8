package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCompleter struct {
	reply  string
	err    error
	prompt string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func newTestResponder(stub *stubCompleter) *Responder {
	return NewResponder(stub, zap.NewNop().Sugar())
}

func TestGenerateParsesRemoteReply(t *testing.T) {
	stub := &stubCompleter{reply: "COMFORT: You are doing fine.\n- rest\n- hydrate\n- walk"}
	rs := newTestResponder(stub)

	resp := rs.Generate(context.Background(), "Content", "a fine day", 0.42)

	assert.Equal(t, "You are doing fine.", resp.Comfort)
	assert.Equal(t, []string{"rest", "hydrate", "walk"}, resp.Suggestions)
}

func TestGeneratePromptContents(t *testing.T) {
	stub := &stubCompleter{reply: "COMFORT: ok\n- a\n- b\n- c"}
	rs := newTestResponder(stub)

	rs.Generate(context.Background(), "Worried", "exams are coming", -0.44)

	assert.Contains(t, stub.prompt, `"exams are coming"`)
	assert.Contains(t, stub.prompt, `"Worried"`)
	assert.Contains(t, stub.prompt, "-0.44")
	assert.Contains(t, stub.prompt, "COMFORT:")
}

func TestGenerateFallsBackOnRemoteError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection refused")}
	rs := newTestResponder(stub)

	resp := rs.Generate(context.Background(), "Sad", "bad day", -0.6)

	require.Len(t, resp.Suggestions, 3)
	assert.NotEmpty(t, resp.Comfort)
	assert.Contains(t, fallbackComfort[categoryNegative], resp.Comfort)
}

func TestGenerateSynthesizesMissingComfort(t *testing.T) {
	stub := &stubCompleter{reply: "- one thing\n- another thing"}
	rs := newTestResponder(stub)

	resp := rs.Generate(context.Background(), "Anxious", "spiraling a bit", -0.5)

	assert.Equal(t, "I understand you're feeling anxious. Your feelings are valid and important.", resp.Comfort)
}

// Replies that parsed to one or two suggestions are passed through
// without padding; only a complete miss gets the generic list.
func TestGeneratePartialSuggestionsNotPadded(t *testing.T) {
	stub := &stubCompleter{reply: "COMFORT: hang in there\n- only one idea"}
	rs := newTestResponder(stub)

	resp := rs.Generate(context.Background(), "Down", "meh", -0.1)

	assert.Equal(t, []string{"only one idea"}, resp.Suggestions)
}

func TestGenerateSubstitutesGenericSuggestions(t *testing.T) {
	stub := &stubCompleter{reply: "COMFORT: hang in there, no bullets today"}
	rs := newTestResponder(stub)

	resp := rs.Generate(context.Background(), "Down", "meh", -0.1)

	require.Len(t, resp.Suggestions, 3)
	assert.Equal(t, genericSuggestions, resp.Suggestions)
}

func TestGenerateNeverReturnsEmpty(t *testing.T) {
	stubs := []*stubCompleter{
		{err: errors.New("timeout")},
		{reply: ""},
		{reply: "garbage with no structure"},
		{reply: strings.Repeat("x", 10000)},
	}

	for _, stub := range stubs {
		resp := newTestResponder(stub).Generate(context.Background(), "Neutral", "text", 0)
		assert.NotEmpty(t, resp.Comfort)
		assert.NotEmpty(t, resp.Suggestions)
		assert.LessOrEqual(t, len(resp.Suggestions), 3)
	}
}
