/**
 * @file naming.go
 * @brief Naming protocol (applicant handler)
 *
 * Moves an applicant into the player registry once it submits a unique,
 * non-empty name.
 */

package server

import "fmt"

func (s *Server) handleApplicantData(c *Client, data []byte) {
	c.framer.write(data)

	line, ok := c.framer.consumeLine()
	if !ok {
		if c.framer.room() == 0 {
			if s.safeWrite(c, "Your name was too long! It might look weird now.\r\n") {
				c.framer.reset()
			}
		}
		return
	}

	if line == "" {
		if s.safeWrite(c, "Please enter a valid name.\r\n") {
			c.framer.reset()
		}
		return
	}

	if s.cfg.MaxName > 0 && len(line) > s.cfg.MaxName-1 {
		if s.safeWrite(c, "Your name was too long! It might look weird now.\r\n") {
			c.framer.reset()
		}
		return
	}

	if _, taken := s.registry.playerByName(line); taken {
		if s.safeWrite(c, "Sorry, that name is taken! Please enter a new name.\r\n") {
			c.framer.reset()
		}
		return
	}

	s.admitPlayer(c, line)
}

/**
 * @brief Admit an applicant as a named player
 *
 * The applicant record is discarded and a fresh player record is built on
 * the same socket, deliberately, not a re-link, so there is no list
 * surgery to get wrong.
 */
func (s *Server) admitPlayer(c *Client, name string) {
	s.registry.removeApplicant(c.id)

	player := newClient(c.id, c.conn, c.addr, s.cfg.MaxBuf)
	player.name = name
	s.registry.addPlayer(player)

	if !s.turn.held {
		s.turn.Set(player.id)
	}

	s.broadcastToPlayers(fmt.Sprintf("%s has just joined.\r\n", name))

	if !s.registry.hasPlayer(player.id) {
		return
	}

	if !s.safeWrite(player, s.game.StatusMessage()) {
		return
	}

	s.announceTurn()
}
