/**
 * @file dict.go
 * @brief Dictionary of candidate words
 *
 * Loads a newline-separated word list and hands out random words to the
 * game package. Kept separate from game state so that a single loaded
 * dictionary can back any number of game rollovers.
 */

package dict

import (
	// System
	"bufio"
	"errors"
	"math/rand"
	"os"
	"strings"
	"time"
)

/**
 * @class Dictionary
 * @brief An in-memory word list loaded from a single file
 */
type Dictionary struct {
	words []string
	rng   *rand.Rand
}

/**
 * @brief Load a dictionary from a newline-separated word file
 * @param[in] path Path to the word list
 * @return dict Loaded Dictionary
 *
 * Blank lines are skipped. Words are lower-cased on load since guesses are
 * restricted to lowercase letters.
 */
func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d := &Dictionary{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			d.words = append(d.words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(d.words) == 0 {
		return nil, errors.New("dictionary is empty")
	}

	return d, nil
}

/**
 * @brief Return a random word from the dictionary
 */
func (d *Dictionary) RandomWord() string {
	return d.words[d.rng.Intn(len(d.words))]
}
