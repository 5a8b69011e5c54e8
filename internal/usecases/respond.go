package usecases

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"drmind/internal/models"
)

// Completer is the remote text-generation boundary. *ai.ChatClient
// satisfies it.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var genericSuggestions = []string{
	"Take a moment to breathe deeply and center yourself",
	"Write down your thoughts to help process them",
	"Reach out to someone you trust for support",
}

// Responder turns a journal submission into a comfort message plus
// suggestions, degrading to the local fallback tables when the remote
// call fails or its reply cannot be parsed.
type Responder struct {
	client Completer
	log    *zap.SugaredLogger
}

func NewResponder(client Completer, log *zap.SugaredLogger) *Responder {
	return &Responder{client: client, log: log}
}

// Generate never fails outward: any remote or parse trouble is absorbed
// and replaced with fallback content.
func (rs *Responder) Generate(ctx context.Context, mood, journal string, sentiment float64) models.AIResponse {
	op := "usecases.Generate"

	prompt := BuildPrompt(mood, journal, sentiment)

	reply, err := rs.client.Complete(ctx, prompt)
	if err != nil {
		rs.log.Warnw("AI call failed, using fallback", "op", op, "error", err)
		return Fallback(mood, journal, sentiment)
	}

	comfort, suggestions := ParseAIReply(reply)

	if comfort == "" {
		comfort = fmt.Sprintf("I understand you're feeling %s. Your feelings are valid and important.",
			strings.ToLower(mood))
	}

	// A reply that parsed to one or two bullets is passed through
	// as-is; only a complete miss gets the generic list.
	if len(suggestions) == 0 {
		suggestions = make([]string, len(genericSuggestions))
		copy(suggestions, genericSuggestions)
	}

	return models.AIResponse{
		Comfort:     comfort,
		Suggestions: suggestions,
	}
}

// BuildPrompt embeds the journal text, mood label and sentiment score
// into the instruction the remote model answers.
func BuildPrompt(mood, journal string, sentiment float64) string {
	return fmt.Sprintf("You are Dr. Mind, a compassionate AI mental health companion. "+
		"The user wrote: %q and selected the mood: %q with a sentiment score of %.2f. "+
		"Please provide a warm, empathetic comfort message (2-3 sentences) and three actionable, "+
		"practical suggestions for what to do next. Format your response as: "+
		"COMFORT: [your comfort message here] "+
		"SUGGESTIONS: - [suggestion 1] - [suggestion 2] - [suggestion 3]",
		journal, mood, sentiment)
}
