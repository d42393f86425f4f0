/**
 * @file guess.go
 * @brief Guess protocol (player handler)
 *
 * Validates a line from the current turn-holder as a single-letter guess,
 * applies it to the game, and decides among the four possible outcomes:
 * win, correct-but-unsolved, wrong, or wrong-and-out-of-guesses.
 */

package server

import "fmt"

func (s *Server) handlePlayerData(c *Client, data []byte) {
	c.framer.write(data)

	line, ok := c.framer.consumeLine()
	if !ok {
		if c.framer.room() == 0 {
			if s.safeWrite(c, "Your input was too long! Weird stuff might happen now.\r\n") {
				c.framer.reset()
			}
		}
		return
	}

	if !s.turn.Is(c.id) {
		s.safeWrite(c, "It is not your turn to guess.\r\n")
		return
	}

	if len(line) != 1 || line[0] < 'a' || line[0] > 'z' || s.game.LetterGuessed(line[0]) {
		s.safeWrite(c, "Invalid guess. Please guess again.\r\n")
		return
	}

	letter := line[0]
	name := c.name
	id := c.id

	inWord, solved := s.game.Apply(letter)

	switch {
	case inWord && solved:
		// Winner keeps the turn token into the fresh round.
		s.announceWinner(id, name)
		s.game.Init()

	case inWord && !solved:
		s.broadcastToPlayers(fmt.Sprintf("%s guesses: %c\r\n", name, letter))

	default:
		// Advance before replying: if the reply write fails and removes the
		// guesser, the removal path's turn transfer must see the post-advance
		// state.
		s.advanceTurn()
		s.safeWrite(c, fmt.Sprintf("%c is not in the word\r\n", letter))

		if s.game.GuessesLeft() == 0 {
			s.broadcastToPlayers(fmt.Sprintf("No more guesses.  The word was %s.\r\n\r\nLet's start a new game.\r\n", s.game.Word()))
			s.game.Init()
		} else {
			s.broadcastToPlayers(fmt.Sprintf("%s guesses: %c\r\n", name, letter))
		}
	}

	s.broadcastToPlayers(s.game.StatusMessage())
	s.announceTurn()
}

/// Round-robin advance on a wrong guess.
func (s *Server) advanceTurn() {
	holder, ok := s.turn.Holder()
	if !ok {
		return
	}
	if next, ok := s.registry.nextPlayerID(holder); ok {
		s.turn.Set(next)
	} else {
		s.turn.Clear()
	}
}
