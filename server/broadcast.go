/**
 * @file broadcast.go
 * @brief Safe write and broadcaster
 *
 * safeWrite attempts a full write and removes the client on any failure;
 * broadcastToPlayers and the turn/winner announcements build on it,
 * tolerating and removing clients whose write fails even when that
 * happens mid-traversal.
 */

package server

import "fmt"

/**
 * @brief Write msg in full to c; remove c from whichever registry it is
 *        currently in on any failure
 * @return ok True iff the full message was written
 *
 * Idempotent against a client that is already gone: disconnectByID is a
 * no-op when the id is in neither registry, so a second safeWrite to an
 * already-disconnected client just fails the write again without double
 * removal.
 */
func (s *Server) safeWrite(c *Client, msg string) bool {
	n, err := c.conn.Write([]byte(msg))
	if err != nil || n != len(msg) {
		s.disconnectByID(c.id)
		return false
	}
	return true
}

/// Write msg to every currently-registered player, removing any whose
/// write fails. Safe against removals cascading out of the writes
/// themselves.
func (s *Server) broadcastToPlayers(msg string) {
	for _, p := range s.registry.playersSnapshot() {
		if !s.registry.hasPlayer(p.id) {
			continue
		}
		s.safeWrite(p, msg)
	}
}

/**
 * @brief Tell every other player whose turn it is, then prompt the holder
 *
 * No-op if the token is currently unheld (quiescent, empty player set).
 */
func (s *Server) announceTurn() {
	holderID, ok := s.turn.Holder()
	if !ok {
		return
	}
	holder, ok := s.registry.playerByID(holderID)
	if !ok {
		return
	}

	msg := fmt.Sprintf("It's %s's turn.\r\n", holder.name)
	for _, p := range s.registry.playersSnapshot() {
		if p.id == holderID || !s.registry.hasPlayer(p.id) {
			continue
		}
		s.safeWrite(p, msg)
	}

	if s.registry.hasPlayer(holderID) {
		s.safeWrite(holder, "Your guess?\r\n")
	}
}

/**
 * @brief Announce the winner to everyone
 *
 * Every player but the winner gets "<winner> Won!"; the winner gets
 * "You Win!" in the otherwise identical message.
 */
func (s *Server) announceWinner(winnerID ClientID, winnerName string) {
	word := s.game.Word()
	forOthers := fmt.Sprintf("The word was %s.\r\nGame Over! %s Won!\r\n\r\nLet's start a new game.\r\n", word, winnerName)
	forWinner := fmt.Sprintf("The word was %s.\r\nGame Over! You Win!\r\n\r\nLet's start a new game.\r\n", word)

	for _, p := range s.registry.playersSnapshot() {
		if !s.registry.hasPlayer(p.id) {
			continue
		}
		if p.id == winnerID {
			s.safeWrite(p, forWinner)
		} else {
			s.safeWrite(p, forOthers)
		}
	}
}
