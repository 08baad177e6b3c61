package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{50, 0.5},
		{100, 1.0},
		{250, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}

	dm = NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})
	if got := dm.Level(50, 0); got != 0.75 {
		t.Errorf("Level(50) from 0.5 = %f, expected 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if dm.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := dm.Level(1000, 1000); got != 0.3 {
		t.Errorf("disabled Level = %f, expected initial 0.3", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := dm.Level(0, 300); got != 0.5 {
		t.Errorf("Level at half time = %f, expected 0.5", got)
	}
}

func TestGravityInterval(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		name                 string
		base, minimum, score int
		expected             int
	}{
		{"start", 20, 2, 0, 20},
		{"halfway", 20, 2, 50, 11},
		{"max", 20, 2, 100, 2},
		{"past max", 20, 2, 400, 2},
		{"minimum above base", 5, 10, 100, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := dm.GravityInterval(tc.base, tc.minimum, tc.score, 0)
			if got != tc.expected {
				t.Errorf("GravityInterval(%d, %d, %d) = %d, expected %d",
					tc.base, tc.minimum, tc.score, got, tc.expected)
			}
		})
	}
}
