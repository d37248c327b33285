// internal/oracle/oracle.go
//
// AI oracle for the game: picks secrets, writes clues, and produces
// post-game trivia on top of an ai.Provider. This layer owns prompt
// construction and minimal sanity validation of responses; it makes a
// single request per call and surfaces failures as game.ErrOracle
// without retrying.

package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/wordguess/go-server/internal/ai"
	"github.com/wordguess/go-server/internal/game"
)

// Generator implements game.Oracle over a completion provider.
type Generator struct {
	provider ai.Provider
	model    string
}

func New(provider ai.Provider, model string) *Generator {
	return &Generator{provider: provider, model: model}
}

// GenerateWord asks for one guessable word or short phrase for the
// category/difficulty. Responses shorter than 3 characters after
// normalization are unusable.
func (g *Generator) GenerateWord(ctx context.Context, category game.Category, difficulty game.Difficulty) (string, error) {
	var lengthHint string
	switch difficulty {
	case game.DifficultyEasy:
		lengthHint = "Suggest a relatively common word, perhaps 5-8 letters long."
	case game.DifficultyMedium:
		lengthHint = "Suggest a moderately common word, perhaps 6-10 letters long."
	case game.DifficultyHard:
		lengthHint = "Suggest a less common or slightly trickier word, perhaps 7-12 letters long, or a short two-word phrase if appropriate for the category."
	default:
		lengthHint = "Suggest a word suitable for a word guessing game."
	}

	prompt := fmt.Sprintf(`You are an AI for a word guessing game.
Your task is to select *one* suitable word or a short common phrase (max 2 words) for the player to guess.

Rules:
- The word MUST belong to the category: %q. If the category is "random", pick from any common knowledge category. If the category is "interesting", pick an unusual but guessable word.
- Consider the difficulty level: %q. %s
- The word should be in English.
- Avoid proper nouns unless the category is 'places' or similar.
- Do NOT include punctuation or numbers.
- Respond with ONLY the chosen word or phrase in lowercase. Do not add any explanation or surrounding text.

Category: %s
Difficulty: %s

Chosen word or phrase:`, category, difficulty, lengthHint, category, difficulty)

	out, err := g.provider.Complete(ctx, g.model, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: generate word: %v", game.ErrOracle, err)
	}
	word := game.Normalize(out)
	if len(word) < 3 {
		return "", fmt.Errorf("%w: generated word %q is too short", game.ErrOracle, word)
	}
	return word, nil
}

// GenerateClue asks for the next clue given the full game state, with
// progression instructions keyed by the clue number.
func (g *Generator) GenerateClue(ctx context.Context, c game.ClueContext) (string, error) {
	clueNumber := len(c.Clues) + 1
	attemptsLeft := c.MaxWrong - c.WrongCount

	var correct, incorrect []string
	for _, guess := range c.Guesses {
		if len([]rune(guess)) == 1 && strings.Contains(c.Secret, guess) {
			correct = append(correct, guess)
		} else {
			incorrect = append(incorrect, guess)
		}
	}

	var prior strings.Builder
	if len(c.Clues) == 0 {
		prior.WriteString("None")
	} else {
		for i, clue := range c.Clues {
			fmt.Fprintf(&prior, "\n  %d. %s", i+1, clue)
		}
	}

	prompt := fmt.Sprintf(`You are a helpful AI assistant for a word guessing game (like Hangman).
The player is trying to guess a word.

Game State:
- Hidden Word Length: %d letters
- Current Display: %s
- Correct Guesses So Far: %s
- Incorrect Guesses So Far: %s
- Attempts Left: %d out of %d
- Clues Already Given: %s

Your Task:
Provide the *next* helpful clue (Clue #%d) for the hidden word: %q.

Instructions:
- Make the clue progressively more helpful based on the clue number.
- Clue 1 should be general (like its category or a broad concept).
- Subsequent clues should become more specific but *never* reveal the word directly.
- Do *not* reveal specific unguessed letters directly.
- Consider the letters already guessed (correctly and incorrectly).
- Keep the clue concise (1-2 sentences).
- Do not repeat previous clues.
%s
Generate only the clue text itself.`,
		len(c.Secret), c.Display,
		orNone(correct), orNone(incorrect),
		attemptsLeft, c.MaxWrong,
		prior.String(),
		clueNumber, c.Secret,
		progressionHint(clueNumber))

	out, err := g.provider.Complete(ctx, g.model, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: generate clue: %v", game.ErrOracle, err)
	}
	clue := strings.TrimSpace(out)
	if clue == "" {
		return "", fmt.Errorf("%w: empty clue", game.ErrOracle)
	}
	return clue, nil
}

// GenerateInfo asks for short trivia about the finished game's word.
func (g *Generator) GenerateInfo(ctx context.Context, word string) (string, error) {
	prompt := fmt.Sprintf(`You are an AI assistant providing interesting facts.
The user has just finished a word guessing game where the word was %q.

Your Task:
Provide 1-3 concise and interesting facts, definitions, or context about the word %q.
Keep it engaging and suitable for someone who just interacted with the word in a game.
Start directly with the information. Do not add introductory phrases.
If it's a phrase, explain the phrase or its origin.

Word: %s

Information:`, word, word, word)

	out, err := g.provider.Complete(ctx, g.model, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: generate info: %v", game.ErrOracle, err)
	}
	info := strings.TrimSpace(out)
	if info == "" {
		return "", fmt.Errorf("%w: empty info", game.ErrOracle)
	}
	return info, nil
}

func orNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func progressionHint(clueNumber int) string {
	switch clueNumber {
	case 1:
		return "- This is the first clue, so provide a general hint (like its category or a common association)."
	case 2:
		return "- This is the second clue. Provide a slightly more specific hint than the first, perhaps related to its use or a characteristic."
	default:
		return fmt.Sprintf("- This is clue number %d. Provide an increasingly specific hint, building on previous clues if possible, without giving away the word.", clueNumber)
	}
}
