package game

import "fmt"

// difficultyLimits maps each tier to its quotas. Easier tiers are never
// stricter than harder ones; both columns decrease from easy to hard.
var difficultyLimits = map[Difficulty]Limits{
	DifficultyEasy:   {MaxWrong: 8, MaxClues: 5},
	DifficultyMedium: {MaxWrong: 6, MaxClues: 4},
	DifficultyHard:   {MaxWrong: 5, MaxClues: 3},
}

// LimitsFor returns the quotas for a difficulty tier. An unknown tier is
// a configuration error: tiers are validated at the boundary, so hitting
// this deeper in the call chain means a bug, not bad user input.
func LimitsFor(d Difficulty) (Limits, error) {
	l, ok := difficultyLimits[d]
	if !ok {
		return Limits{}, fmt.Errorf("no limits configured for difficulty %q", d)
	}
	return l, nil
}
