/**
 * @file server.go
 * @brief Event loop
 *
 * A single goroutine — the event loop — owns the Registry, the turn token
 * and the Game, and is the only goroutine that ever touches them, which is
 * what lets state mutation go without locking. Accept and per-connection
 * reads happen on other goroutines but only ever *forward* what they
 * observed through the events channel; one reader goroutine per socket
 * plays the role a real epoll/select loop would play in another language,
 * but the rule that only one goroutine may mutate the game is preserved
 * exactly.
 */

package server

import (
	"context"
	"net"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/BaldaGo/hangman-server/conf"
	"github.com/BaldaGo/hangman-server/game"
	"github.com/BaldaGo/hangman-server/logger"
)

/**
 * @class Server
 * @brief Telnet-style hangman server core
 */
type Server struct {
	cfg  *conf.Config
	game *game.Game

	registry *Registry
	turn     *turnToken

	events chan event
	nextID ClientID
}

/// Create a Server bound to a config and a game (which already owns the
/// dictionary and has dealt its first round).
func New(cfg *conf.Config, g *game.Game) *Server {
	return &Server{
		cfg:      cfg,
		game:     g,
		registry: newRegistry(),
		turn:     &turnToken{},
		events:   make(chan event, 64),
	}
}

/**
 * @brief Run the listener, the event loop, and every connection's reader
 *        until ctx is cancelled or a fatal error occurs
 */
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return logger.Trace(err, "Can't establish tcp listener")
	}
	logger.Log.Infof("Server started listening on: %s", addr)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		<-gctx.Done()
		return ln.Close()
	})
	group.Go(func() error {
		return s.acceptLoop(gctx, ln)
	})
	group.Go(func() error {
		return s.eventLoop(gctx)
	})

	return group.Wait()
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return logger.Trace(err, "accept failed")
		}

		id := s.nextID
		s.nextID++

		logger.Log.Infof("New client is connecting from %s", conn.RemoteAddr())
		s.events <- event{kind: evAccept, id: id, conn: conn, addr: conn.RemoteAddr().String()}
		go readerLoop(ctx, id, conn, s.events)
	}
}

func (s *Server) eventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-s.events:
			s.dispatch(ev)
		}
	}
}

/**
 * @brief Apply one event to server state
 *
 * Searches applicants then players, handles the first match, and never
 * touches both — a client is in exactly one registry at a time.
 */
func (s *Server) dispatch(ev event) {
	switch ev.kind {
	case evAccept:
		s.handleAccept(ev.id, ev.conn, ev.addr)
	case evData:
		s.handleReady(ev.id, ev.data)
	case evClosed, evError:
		s.disconnectByID(ev.id)
	}
}

func (s *Server) handleAccept(id ClientID, conn net.Conn, addr string) {
	c := newClient(id, conn, addr, s.applicantBufCap())
	s.registry.addApplicant(c)

	if s.safeWrite(c, s.cfg.WelcomeMsg) {
		logger.Log.Debugf("Connection from %s", addr)
	}
}

/// Applicant input buffer capacity: the name bound plus CRLF headroom,
/// falling back to MaxBuf if MaxName is unconfigured.
func (s *Server) applicantBufCap() int {
	if s.cfg.MaxName <= 0 {
		return s.cfg.MaxBuf
	}
	return s.cfg.MaxName + 1
}

func (s *Server) handleReady(id ClientID, data []byte) {
	if c, ok := s.registry.applicantByID(id); ok {
		s.handleApplicantData(c, data)
		return
	}
	if c, ok := s.registry.playerByID(id); ok {
		s.handlePlayerData(c, data)
		return
	}
	// Already disconnected; a trailing event from the reader goroutine.
}

/// Remove whichever registry currently knows about id, running the full
/// player-removal protocol when it was a player. A no-op when id is in
/// neither registry.
func (s *Server) disconnectByID(id ClientID) {
	if c, ok := s.registry.playerByID(id); ok {
		s.disconnectPlayer(c)
		return
	}
	if c, ok := s.registry.applicantByID(id); ok {
		s.disconnectApplicant(c)
		return
	}
}

func (s *Server) disconnectApplicant(c *Client) {
	s.registry.removeApplicant(c.id)
	c.conn.Close()
}

/**
 * @brief Full player removal protocol
 *
 * Unlink, transfer the turn token if it pointed here, close the socket,
 * then broadcast the goodbye and re-announce the turn if one still holds
 * it — in that order, so the goodbye broadcast (which may itself cascade
 * further removals) sees a registry that has already forgotten c.
 */
func (s *Server) disconnectPlayer(c *Client) {
	name := c.name

	_, follower, hasFollower := s.registry.removePlayerByID(c.id)
	if s.turn.Is(c.id) {
		if hasFollower {
			s.turn.Set(follower)
		} else {
			s.turn.Clear()
		}
	}

	c.conn.Close()

	s.broadcastToPlayers("Goodbye " + name + "\r\n")

	if _, ok := s.turn.Holder(); ok {
		s.announceTurn()
	}
}
