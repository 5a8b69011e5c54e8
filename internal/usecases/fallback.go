package usecases

import (
	"math/rand"

	"drmind/internal/models"
)

const (
	categoryPositive = "positive"
	categoryNeutral  = "neutral"
	categoryNegative = "negative"
)

var fallbackComfort = map[string][]string{
	categoryPositive: {
		"It's wonderful to see you in such a positive space! Your energy is contagious and inspiring.",
		"Your positive outlook is truly beautiful. This kind of energy can create amazing ripples in your life.",
		"What a joy to witness your happiness! These moments of positivity are precious and worth celebrating.",
	},
	categoryNeutral: {
		"It's perfectly okay to feel neutral. Every emotion has its place in our journey.",
		"Neutral moments are often when we can best observe and understand ourselves.",
		"There's wisdom in accepting all our emotional states, including the calm neutral ones.",
	},
	categoryNegative: {
		"I hear you, and your feelings are completely valid. It's okay to not be okay.",
		"Your emotions are real and important. You don't have to rush through this difficult time.",
		"It takes courage to acknowledge when we're struggling. You're showing strength by being honest.",
	},
}

var fallbackSuggestions = map[string][]string{
	categoryPositive: {
		"Share this positive energy with someone who might need it",
		"Document this feeling to remember it during tougher times",
		"Use this momentum to tackle something you've been putting off",
	},
	categoryNeutral: {
		"Take a moment to practice mindfulness or meditation",
		"Try a new activity to add some variety to your day",
		"Connect with a friend or family member",
	},
	categoryNegative: {
		"Practice self-compassion - be as kind to yourself as you would be to a friend",
		"Try some gentle physical activity like walking or stretching",
		"Consider talking to someone you trust about how you're feeling",
	},
}

// bucket maps a sentiment score onto a fallback category. The
// boundaries are strict: exactly 0.3 or -0.3 is still neutral.
func bucket(sentiment float64) string {
	switch {
	case sentiment > 0.3:
		return categoryPositive
	case sentiment < -0.3:
		return categoryNegative
	default:
		return categoryNeutral
	}
}

// Fallback produces a canned response for the given sentiment bucket.
// It never fails and touches no I/O; every failure mode of the remote
// path terminates here. The suggestion list is returned in full, so
// fallback responses always carry exactly three suggestions.
func Fallback(mood, journal string, sentiment float64) models.AIResponse {
	category := bucket(sentiment)

	messages := fallbackComfort[category]
	comfort := messages[rand.Intn(len(messages))]

	suggestions := make([]string, len(fallbackSuggestions[category]))
	copy(suggestions, fallbackSuggestions[category])

	return models.AIResponse{
		Comfort:     comfort,
		Suggestions: suggestions,
	}
}
