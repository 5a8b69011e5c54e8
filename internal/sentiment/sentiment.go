package sentiment

import (
	"strings"
	"unicode"
)

// valence assigns each lexicon word a polarity in [-1, 1].
var valence = map[string]float64{
	"amazing":     0.9,
	"awesome":     0.9,
	"beautiful":   0.8,
	"best":        0.9,
	"better":      0.5,
	"blessed":     0.8,
	"brilliant":   0.9,
	"calm":        0.4,
	"celebrate":   0.7,
	"cheerful":    0.7,
	"comfortable": 0.5,
	"confident":   0.6,
	"delighted":   0.9,
	"energized":   0.6,
	"enjoy":       0.6,
	"enjoyed":     0.6,
	"excellent":   0.9,
	"excited":     0.7,
	"fantastic":   0.9,
	"fun":         0.6,
	"glad":        0.6,
	"good":        0.6,
	"grateful":    0.8,
	"great":       0.8,
	"happy":       0.8,
	"hopeful":     0.6,
	"joy":         0.8,
	"joyful":      0.8,
	"laughed":     0.6,
	"love":        0.8,
	"loved":       0.8,
	"lovely":      0.7,
	"nice":        0.5,
	"peaceful":    0.5,
	"perfect":     0.9,
	"pleasant":    0.5,
	"proud":       0.7,
	"relaxed":     0.5,
	"relieved":    0.5,
	"satisfied":   0.5,
	"smile":       0.5,
	"strong":      0.4,
	"success":     0.7,
	"thankful":    0.8,
	"thrilled":    0.9,
	"wonderful":   0.9,

	"afraid":       -0.6,
	"alone":        -0.4,
	"angry":        -0.8,
	"annoyed":      -0.5,
	"anxious":      -0.6,
	"awful":        -0.9,
	"bad":          -0.6,
	"broken":       -0.6,
	"cried":        -0.7,
	"cry":          -0.6,
	"depressed":    -0.9,
	"devastated":   -0.9,
	"disappointed": -0.6,
	"down":         -0.4,
	"drained":      -0.5,
	"dreadful":     -0.8,
	"empty":        -0.5,
	"exhausted":    -0.5,
	"failed":       -0.7,
	"failure":      -0.7,
	"fear":         -0.6,
	"frustrated":   -0.6,
	"guilty":       -0.5,
	"hate":         -0.8,
	"hated":        -0.8,
	"heartbroken":  -0.9,
	"hopeless":     -0.9,
	"horrible":     -0.9,
	"hurt":         -0.6,
	"lonely":       -0.6,
	"lost":         -0.4,
	"mad":          -0.6,
	"miserable":    -0.8,
	"nervous":      -0.4,
	"overwhelmed":  -0.6,
	"pain":         -0.6,
	"sad":          -0.7,
	"scared":       -0.6,
	"sick":         -0.5,
	"stress":       -0.5,
	"stressed":     -0.6,
	"terrible":     -0.9,
	"tired":        -0.3,
	"upset":        -0.6,
	"worried":      -0.5,
	"worst":        -0.9,
	"worthless":    -0.9,
}

// negators flip the polarity of the word that follows them.
var negators = map[string]bool{
	"not":      true,
	"no":       true,
	"never":    true,
	"hardly":   true,
	"dont":     true,
	"don't":    true,
	"didnt":    true,
	"didn't":   true,
	"isnt":     true,
	"isn't":    true,
	"wasnt":    true,
	"wasn't":   true,
	"cant":     true,
	"can't":    true,
	"couldnt":  true,
	"couldn't": true,
}

// Score estimates the polarity of text on [-1, 1]. Words are matched
// against a fixed lexicon and the hit values averaged, with a simple
// flip for a directly preceding negator. Texts with no lexicon hits
// score 0. The same text always yields the same score.
func Score(text string) float64 {
	words := tokenize(text)
	if len(words) == 0 {
		return 0
	}

	var sum float64
	hits := 0
	negate := false

	for _, w := range words {
		if negators[w] {
			negate = true
			continue
		}
		if v, ok := valence[w]; ok {
			if negate {
				v = -v
			}
			sum += v
			hits++
		}
		negate = false
	}

	if hits == 0 {
		return 0
	}
	return clamp(sum / float64(hits))
}

func tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
