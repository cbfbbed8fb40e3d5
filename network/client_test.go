package network

import (
	"testing"

	"github.com/charlie-adam/slitherio/shared/messages"
)

func envelope(t *testing.T, event string, data any) messages.Envelope {
	t.Helper()
	raw, err := messages.Encode(event, data)
	if err != nil {
		t.Fatalf("encode %s: %v", event, err)
	}
	env, err := messages.Decode(raw)
	if err != nil {
		t.Fatalf("decode %s: %v", event, err)
	}
	return env
}

func TestDeathNoticeNeverDropped(t *testing.T) {
	c := NewClient()

	// A burst of death events between frames must still surface one; the
	// latest supersedes the rest.
	for score := 1; score <= 10; score++ {
		c.dispatch(envelope(t, messages.EventDeath, messages.DeathNotice{Score: score}))
	}

	deaths := c.DrainDeaths()
	if len(deaths) != 1 {
		t.Fatalf("deaths = %d, want 1", len(deaths))
	}
	if deaths[0].Score != 10 {
		t.Errorf("score = %d, want the latest (10)", deaths[0].Score)
	}
	if extra := c.DrainDeaths(); len(extra) != 0 {
		t.Errorf("second drain returned %d notices, want 0", len(extra))
	}
}

func TestTickLatestWins(t *testing.T) {
	c := NewClient()
	for i := 0; i < 3; i++ {
		c.dispatch(envelope(t, messages.EventGameTick, messages.TickUpdate{
			Leaderboard: []messages.LeaderboardEntry{{Name: "a", Score: i}},
		}))
	}

	tick := c.LatestTick()
	if tick == nil {
		t.Fatal("no tick surfaced")
	}
	if tick.Leaderboard[0].Score != 2 {
		t.Errorf("score = %d, want the latest (2)", tick.Leaderboard[0].Score)
	}
	if c.LatestTick() != nil {
		t.Error("stale tick surfaced twice")
	}
}
