package server

import (
	"net"
	"testing"
)

func newTestClient(id ClientID, name string) *Client {
	conn, _ := net.Pipe()
	c := newClient(id, conn, "test", 64)
	c.name = name
	return c
}

func TestRegistryApplicantLifecycle(t *testing.T) {
	r := newRegistry()
	c := newTestClient(1, "")
	r.addApplicant(c)

	if !r.hasApplicant(1) {
		t.Fatalf("expected applicant 1 to be registered")
	}
	if _, ok := r.applicantByID(1); !ok {
		t.Fatalf("expected to find applicant by id")
	}

	r.removeApplicant(1)
	if r.hasApplicant(1) {
		t.Fatalf("expected applicant 1 to be gone after removal")
	}
}

func TestRegistryPlayerOrderingAndLookup(t *testing.T) {
	r := newRegistry()
	a := newTestClient(1, "alice")
	b := newTestClient(2, "bob")
	r.addPlayer(a)
	r.addPlayer(b)

	if r.playerCount() != 2 {
		t.Fatalf("playerCount() = %d, want 2", r.playerCount())
	}
	if _, ok := r.playerByName("alice"); !ok {
		t.Fatalf("expected to find alice by name")
	}
	if _, taken := r.playerByName("carol"); taken {
		t.Fatalf("carol should not be a player")
	}
}

func TestRegistryNextPlayerWrapsRoundRobin(t *testing.T) {
	r := newRegistry()
	r.addPlayer(newTestClient(1, "a"))
	r.addPlayer(newTestClient(2, "b"))
	r.addPlayer(newTestClient(3, "c"))

	next, ok := r.nextPlayerID(1)
	if !ok || next != 2 {
		t.Fatalf("nextPlayerID(1) = (%v, %v), want (2, true)", next, ok)
	}
	next, ok = r.nextPlayerID(3)
	if !ok || next != 1 {
		t.Fatalf("nextPlayerID(3) = (%v, %v), want (1, true) [wraps to head]", next, ok)
	}
}

func TestRegistryNextPlayerWithSoleSurvivorWrapsToSelf(t *testing.T) {
	r := newRegistry()
	r.addPlayer(newTestClient(1, "solo"))

	next, ok := r.nextPlayerID(1)
	if !ok || next != 1 {
		t.Fatalf("nextPlayerID(1) = (%v, %v), want (1, true) [turn wraps to self]", next, ok)
	}
}

func TestRegistryNextPlayerUnknownIDFails(t *testing.T) {
	r := newRegistry()
	r.addPlayer(newTestClient(1, "a"))

	if _, ok := r.nextPlayerID(99); ok {
		t.Fatalf("nextPlayerID for an unknown id should fail")
	}
}

func TestRegistryRemovePlayerByIDReturnsFollower(t *testing.T) {
	r := newRegistry()
	r.addPlayer(newTestClient(1, "a"))
	r.addPlayer(newTestClient(2, "b"))
	r.addPlayer(newTestClient(3, "c"))

	removed, follower, hasFollower := r.removePlayerByID(2)
	if removed == nil || removed.name != "b" {
		t.Fatalf("expected to remove b")
	}
	if !hasFollower || follower != 3 {
		t.Fatalf("follower = (%v, %v), want (3, true)", follower, hasFollower)
	}
	if r.playerCount() != 2 {
		t.Fatalf("playerCount() = %d, want 2", r.playerCount())
	}
}

func TestRegistryRemoveTailPlayerFollowerWrapsToHead(t *testing.T) {
	r := newRegistry()
	r.addPlayer(newTestClient(1, "a"))
	r.addPlayer(newTestClient(2, "b"))

	_, follower, hasFollower := r.removePlayerByID(2)
	if !hasFollower || follower != 1 {
		t.Fatalf("follower = (%v, %v), want (1, true)", follower, hasFollower)
	}
}

func TestRegistryRemoveLastPlayerHasNoFollower(t *testing.T) {
	r := newRegistry()
	r.addPlayer(newTestClient(1, "solo"))

	_, _, hasFollower := r.removePlayerByID(1)
	if hasFollower {
		t.Fatalf("removing the only player should leave no follower")
	}
}

func TestRegistryPlayersSnapshotIsIndependentCopy(t *testing.T) {
	r := newRegistry()
	r.addPlayer(newTestClient(1, "a"))

	snap := r.playersSnapshot()
	r.addPlayer(newTestClient(2, "b"))

	if len(snap) != 1 {
		t.Fatalf("snapshot should not observe later insertions, got len %d", len(snap))
	}
}
