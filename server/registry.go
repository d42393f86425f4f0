/**
 * @file registry.go
 * @brief Client registry: applicants and players
 *
 * Two populations of clients: applicants, an unordered set of
 * connected-but-unnamed sockets, and players, an ordered sequence (by
 * admission order, since round-robin turn order depends on it). Touched
 * only from the event-loop goroutine, so none of this needs locking.
 */

package server

/**
 * @class Registry
 * @brief Owns the applicant map and the player sequence
 */
type Registry struct {
	applicants map[ClientID]*Client
	players    []*Client
}

func newRegistry() *Registry {
	return &Registry{applicants: make(map[ClientID]*Client)}
}

// -- applicants --------------------------------------------------------

func (r *Registry) addApplicant(c *Client) {
	r.applicants[c.id] = c
}

func (r *Registry) applicantByID(id ClientID) (*Client, bool) {
	c, ok := r.applicants[id]
	return c, ok
}

func (r *Registry) hasApplicant(id ClientID) bool {
	_, ok := r.applicants[id]
	return ok
}

/// Drop the applicant record. Does not touch the socket: callers that are
/// promoting an applicant to a player want the connection kept alive.
func (r *Registry) removeApplicant(id ClientID) {
	delete(r.applicants, id)
}

// -- players -------------------------------------------------------------

func (r *Registry) addPlayer(c *Client) {
	r.players = append(r.players, c)
}

func (r *Registry) playerByID(id ClientID) (*Client, bool) {
	for _, p := range r.players {
		if p.id == id {
			return p, true
		}
	}
	return nil, false
}

func (r *Registry) playerByName(name string) (*Client, bool) {
	for _, p := range r.players {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}

func (r *Registry) hasPlayer(id ClientID) bool {
	_, ok := r.playerByID(id)
	return ok
}

func (r *Registry) playerCount() int {
	return len(r.players)
}

/**
 * @brief Snapshot the player sequence for a traversal that must survive
 *        removals triggered mid-traversal: copy the whole sequence once up
 *        front rather than re-deriving "next" at each step, then have
 *        callers check hasPlayer before writing to a copied entry, since
 *        the only mutation broadcast/turn-announce ever trigger is
 *        removal, never insertion or reordering.
 */
func (r *Registry) playersSnapshot() []*Client {
	snap := make([]*Client, len(r.players))
	copy(snap, r.players)
	return snap
}

/**
 * @brief Player that follows id in insertion order, wrapping at the tail
 * @return next Player following id; id itself when it is the only player
 * @return ok False iff id is not a player at all
 */
func (r *Registry) nextPlayerID(id ClientID) (next ClientID, ok bool) {
	idx := r.indexOfPlayer(id)
	if idx == -1 {
		return ClientID(0), false
	}
	return r.players[(idx+1)%len(r.players)].id, true
}

func (r *Registry) indexOfPlayer(id ClientID) int {
	for i, p := range r.players {
		if p.id == id {
			return i
		}
	}
	return -1
}

/**
 * @brief Remove a player by id
 * @return removed The removed client record, or nil if id wasn't a player
 * @return follower The player that followed it in insertion order, else
 *         the new head of the remaining sequence
 * @return hasFollower False iff the sequence is empty after removal
 *
 * This is the registry-collection half of player removal: it hands back
 * exactly the information the turn token needs ("transfer to the player
 * that followed, else the head, else none"); the caller decides whether
 * the removed player actually held the turn.
 */
func (r *Registry) removePlayerByID(id ClientID) (removed *Client, follower ClientID, hasFollower bool) {
	idx := r.indexOfPlayer(id)
	if idx == -1 {
		return nil, ClientID(0), false
	}

	removed = r.players[idx]
	n := len(r.players)
	if n > 1 {
		if idx+1 < n {
			follower = r.players[idx+1].id
		} else {
			follower = r.players[0].id
		}
		hasFollower = true
	}

	r.players = append(r.players[:idx], r.players[idx+1:]...)
	return removed, follower, hasFollower
}
