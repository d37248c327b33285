package game

import "testing"

func TestLimitsForKnownTiers(t *testing.T) {
	cases := []struct {
		tier Difficulty
		want Limits
	}{
		{DifficultyEasy, Limits{MaxWrong: 8, MaxClues: 5}},
		{DifficultyMedium, Limits{MaxWrong: 6, MaxClues: 4}},
		{DifficultyHard, Limits{MaxWrong: 5, MaxClues: 3}},
	}
	for _, c := range cases {
		got, err := LimitsFor(c.tier)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.tier, err)
		}
		if got != c.want {
			t.Fatalf("%s: expected %+v, got %+v", c.tier, c.want, got)
		}
	}
}

func TestLimitsNonIncreasingByDifficulty(t *testing.T) {
	tiers := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
	for i := 1; i < len(tiers); i++ {
		prev, _ := LimitsFor(tiers[i-1])
		cur, _ := LimitsFor(tiers[i])
		if cur.MaxWrong > prev.MaxWrong || cur.MaxClues > prev.MaxClues {
			t.Fatalf("%s has looser limits than %s", tiers[i], tiers[i-1])
		}
	}
}

func TestLimitsForUnknownTier(t *testing.T) {
	if _, err := LimitsFor(Difficulty("nightmare")); err == nil {
		t.Fatal("expected an error for an unknown tier")
	}
}

func TestParseCategory(t *testing.T) {
	if _, err := ParseCategory(" Tech "); err != nil {
		t.Fatalf("expected tech to parse, got %v", err)
	}
	if _, err := ParseCategory("sports"); err == nil {
		t.Fatal("expected unknown category to be rejected")
	}
}

func TestParseDifficulty(t *testing.T) {
	if _, err := ParseDifficulty("HARD"); err != nil {
		t.Fatalf("expected hard to parse, got %v", err)
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Fatal("expected unknown difficulty to be rejected")
	}
}
