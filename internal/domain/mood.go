// Package domain defines the core domain models for the wellness service.
package domain

import "strings"

// Mood is one of the twelve labels of the closed mood taxonomy.
type Mood string

const (
	MoodHappy     Mood = "Happy"
	MoodExcited   Mood = "Excited"
	MoodCalm      Mood = "Calm"
	MoodNeutral   Mood = "Neutral"
	MoodConfused  Mood = "Confused"
	MoodSad       Mood = "Sad"
	MoodTired     Mood = "Tired"
	MoodLonely    Mood = "Lonely"
	MoodStress    Mood = "Stress"
	MoodAnxiety   Mood = "Anxiety"
	MoodAngry     Mood = "Angry"
	MoodDepressed Mood = "Depressed"
)

// AllMoods lists every label of the taxonomy.
var AllMoods = []Mood{
	MoodHappy, MoodExcited, MoodCalm, MoodNeutral, MoodConfused, MoodSad,
	MoodTired, MoodLonely, MoodStress, MoodAnxiety, MoodAngry, MoodDepressed,
}

// MoodColors maps every mood to its display color.
var MoodColors = map[Mood]string{
	MoodHappy:     "#A8E6CF",
	MoodExcited:   "#FFD54F",
	MoodCalm:      "#80DEEA",
	MoodNeutral:   "#CFD8DC",
	MoodConfused:  "#CE93D8",
	MoodSad:       "#90CAF9",
	MoodTired:     "#B0BEC5",
	MoodLonely:    "#9FA8DA",
	MoodStress:    "#FFCC80",
	MoodAnxiety:   "#FFE082",
	MoodAngry:     "#EF9A9A",
	MoodDepressed: "#90A4AE",
}

// MoodIcons maps every mood to its display icon identifier.
var MoodIcons = map[Mood]string{
	MoodHappy:     "smile",
	MoodExcited:   "sparkles",
	MoodCalm:      "coffee",
	MoodNeutral:   "meh",
	MoodConfused:  "help-circle",
	MoodSad:       "frown",
	MoodTired:     "moon",
	MoodLonely:    "ghost",
	MoodStress:    "alert-circle",
	MoodAnxiety:   "cloud-lightning",
	MoodAngry:     "zap",
	MoodDepressed: "heart",
}

// MoodSupportLines maps every mood to a one-sentence supportive phrase.
var MoodSupportLines = map[Mood]string{
	MoodHappy:     "Your happiness is a beacon. Let's keep this momentum going together.",
	MoodExcited:   "The world is full of possibilities! Use this energy to create something beautiful.",
	MoodCalm:      "Peace is the highest form of success. Savor this tranquility.",
	MoodNeutral:   "Welcome back. Let's chat to understand your heart and mind today.",
	MoodConfused:  "It's okay to not have all the answers. Clarity comes in its own time.",
	MoodSad:       "Remember that setbacks are often stepping stones to growth and new opportunities.",
	MoodTired:     "Rest is not a luxury, it's a necessity. Listen to your body and recharge.",
	MoodLonely:    "You are connected in ways you might not feel right now. I am here with you.",
	MoodStress:    "The weight you're carrying is heavy. One exam or moment doesn't define your whole story.",
	MoodAnxiety:   "The storm in your mind is just a story. You are safe, right here, right now.",
	MoodAngry:     "Heat can be transformed into light. Breathe through the fire until clarity remains.",
	MoodDepressed: "Even in the deepest winter, there is an invincible summer. We'll find it together.",
}

// ParseMood coerces an arbitrary string to a taxonomy label.
// Anything that does not match a known label maps to Neutral, never an error.
func ParseMood(s string) Mood {
	s = strings.TrimFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z')
	})
	for _, m := range AllMoods {
		if strings.EqualFold(s, string(m)) {
			return m
		}
	}
	return MoodNeutral
}

// Color returns the display color for the mood, coercing unknown values.
func (m Mood) Color() string { return MoodColors[ParseMood(string(m))] }

// Icon returns the display icon identifier for the mood.
func (m Mood) Icon() string { return MoodIcons[ParseMood(string(m))] }

// SupportLine returns the supportive phrase for the mood.
func (m Mood) SupportLine() string { return MoodSupportLines[ParseMood(string(m))] }
