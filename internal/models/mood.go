package models

// Mood is one selectable option on the journal page. Value is the
// nominal polarity of the mood, used only for display ordering and
// reference; the stored sentiment always comes from the scorer.
type Mood struct {
	Emoji string  `json:"emoji"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

var Moods = []Mood{
	{Emoji: "😃", Label: "Joyful", Value: 0.9},
	{Emoji: "😊", Label: "Content", Value: 0.7},
	{Emoji: "😌", Label: "Peaceful", Value: 0.6},
	{Emoji: "😇", Label: "Grateful", Value: 0.8},
	{Emoji: "🤗", Label: "Loved", Value: 0.8},
	{Emoji: "🥳", Label: "Excited", Value: 0.9},
	{Emoji: "😎", Label: "Confident", Value: 0.7},
	{Emoji: "😋", Label: "Satisfied", Value: 0.6},
	{Emoji: "😤", Label: "Determined", Value: 0.5},
	{Emoji: "😐", Label: "Neutral", Value: 0.0},
	{Emoji: "😕", Label: "Confused", Value: -0.2},
	{Emoji: "😟", Label: "Worried", Value: -0.4},
	{Emoji: "😢", Label: "Sad", Value: -0.6},
	{Emoji: "😞", Label: "Down", Value: -0.7},
	{Emoji: "😩", Label: "Exhausted", Value: -0.5},
	{Emoji: "😡", Label: "Angry", Value: -0.8},
	{Emoji: "😱", Label: "Anxious", Value: -0.6},
	{Emoji: "😖", Label: "Stressed", Value: -0.5},
	{Emoji: "😰", Label: "Overwhelmed", Value: -0.7},
	{Emoji: "😭", Label: "Devastated", Value: -0.9},
}

// MoodEmoji returns the emoji for a canonical label, or "" for an
// unknown one.
func MoodEmoji(label string) string {
	for _, m := range Moods {
		if m.Label == label {
			return m.Emoji
		}
	}
	return ""
}

// ValidMood reports whether label is one of the canonical mood labels.
func ValidMood(label string) bool {
	for _, m := range Moods {
		if m.Label == label {
			return true
		}
	}
	return false
}
