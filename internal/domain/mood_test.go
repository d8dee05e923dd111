package domain

import "testing"

func TestMoodMappingsTotal(t *testing.T) {
	if len(AllMoods) != 12 {
		t.Fatalf("expected 12 moods, got %d", len(AllMoods))
	}
	for _, m := range AllMoods {
		if MoodColors[m] == "" {
			t.Fatalf("missing color for %s", m)
		}
		if MoodIcons[m] == "" {
			t.Fatalf("missing icon for %s", m)
		}
		if MoodSupportLines[m] == "" {
			t.Fatalf("missing support line for %s", m)
		}
	}
}

func TestParseMood(t *testing.T) {
	cases := []struct {
		in   string
		want Mood
	}{
		{"Happy", MoodHappy},
		{"happy", MoodHappy},
		{"STRESS", MoodStress},
		{" Sad. ", MoodSad},
		{`"Anxiety"`, MoodAnxiety},
		{"ecstatic", MoodNeutral},
		{"", MoodNeutral},
		{"model returned garbage", MoodNeutral},
	}
	for _, tc := range cases {
		if got := ParseMood(tc.in); got != tc.want {
			t.Fatalf("ParseMood(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestUnknownMoodCoercesForDisplay(t *testing.T) {
	unknown := Mood("Euphoric")
	if unknown.Color() != MoodColors[MoodNeutral] {
		t.Fatalf("unknown mood color should coerce to Neutral")
	}
	if unknown.SupportLine() != MoodSupportLines[MoodNeutral] {
		t.Fatalf("unknown mood support line should coerce to Neutral")
	}
}
