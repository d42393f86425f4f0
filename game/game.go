/**
 * @file game.go
 * @brief Game
 *
 * Holds the state of the single shared Hangman round: the chosen word, its
 * masked form, which letters have been tried, and how many wrong guesses
 * remain. Consumed by the server package through a small accessor surface;
 * everything about turns, clients and sockets lives in package server
 * instead.
 */
package game

import (
	"fmt"
	"strings"

	"github.com/BaldaGo/hangman-server/dict"
)

/**
 * @class Game
 * @brief State of the current round
 */
type Game struct {
	dict         *dict.Dictionary
	startGuesses int

	word           string
	guess          []byte
	lettersGuessed [26]bool
	guessesLeft    int
}

/**
 * @brief Create a game bound to a dictionary, and deal its first round
 * @param[in] d Loaded dictionary to draw words from
 * @param[in] startGuesses Number of wrong guesses allowed per round
 */
func New(d *dict.Dictionary, startGuesses int) *Game {
	g := &Game{dict: d, startGuesses: startGuesses}
	g.Init()
	return g
}

/**
 * @brief (Re)initialize the round from a fresh random word
 *
 * Resets the mask to all '-', clears every guessed letter and resets
 * guessesLeft to the configured start value. Called both for the very
 * first round and on every win/loss rollover.
 */
func (g *Game) Init() {
	g.word = g.dict.RandomWord()
	g.guess = make([]byte, len(g.word))
	for i := range g.guess {
		g.guess[i] = '-'
	}
	g.lettersGuessed = [26]bool{}
	g.guessesLeft = g.startGuesses
}

/// The target word of the current round.
func (g *Game) Word() string { return g.word }

/// The masked guess, same length as Word, '-' for unguessed positions.
func (g *Game) MaskedGuess() string { return string(g.guess) }

/// Remaining wrong guesses before the round is lost.
func (g *Game) GuessesLeft() int { return g.guessesLeft }

/// Whether letter has already been tried this round.
func (g *Game) LetterGuessed(letter byte) bool {
	return g.lettersGuessed[letter-'a']
}

/**
 * @brief Apply a validated single-letter guess to the round
 * @param[in] letter Lowercase ASCII letter, not previously guessed
 * @return inWord True iff letter occurs in the target word
 * @return solved True iff, after applying, the mask has no '-' left
 *
 * Decrements guessesLeft when the letter is not in the word. The caller
 * (package server) owns deciding what to broadcast and whether to roll
 * the round over.
 */
func (g *Game) Apply(letter byte) (inWord bool, solved bool) {
	g.lettersGuessed[letter-'a'] = true

	for i := 0; i < len(g.word); i++ {
		if g.word[i] == letter {
			g.guess[i] = letter
			inWord = true
		}
	}

	if !inWord {
		g.guessesLeft--
	}

	solved = !strings.Contains(string(g.guess), "-")
	return inWord, solved
}

/**
 * @brief Render the human-readable status line broadcast after every guess
 * @return line CRLF-terminated status summarizing mask, guesses and letters
 */
func (g *Game) StatusMessage() string {
	var guessed []string
	for c := byte('a'); c <= 'z'; c++ {
		if g.lettersGuessed[c-'a'] {
			guessed = append(guessed, string(c))
		}
	}

	return fmt.Sprintf(
		"The word looks like: %s\r\nGuesses left: %d\r\nGuessed letters: %s\r\n",
		g.MaskedGuess(), g.guessesLeft, strings.Join(guessed, ", "),
	)
}
