package room

import (
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"pokerrooms-server/pkg/playable"
	"pokerrooms-server/pkg/playable/poker/texasholdem"
	"testing"
	"time"
)

func testOptions() texasholdem.Options {
	opts := texasholdem.DefaultOptions()
	opts.BotActionDelay = 5 * time.Millisecond
	opts.NextHandDelay = 10 * time.Millisecond

	return opts
}

func newTestDealer(t *testing.T, maxSeats int) *Dealer {
	t.Helper()

	opts := testOptions()
	opts.MaxSeats = maxSeats

	d, err := NewDealer("TESTROOM1", logrus.StandardLogger(), opts)
	require.NoError(t, err)

	d.StartShift()
	t.Cleanup(d.EndShift)

	return d
}

func newTestPitBoss(t *testing.T) *PitBoss {
	t.Helper()

	p := NewPitBoss(logrus.StandardLogger(), testOptions(), nil)
	t.Cleanup(p.Shutdown)

	return p
}

// nextResponse reads from the client until a response with the key arrives
func nextResponse(t *testing.T, c *Client, key string) *playable.Response {
	t.Helper()

	timeout := time.After(time.Second)
	for {
		select {
		case msg := <-c.SendChan():
			if resp, ok := msg.(*playable.Response); ok && resp.Key == key {
				return resp
			}
		case <-timeout:
			t.Fatalf("timed out waiting for a %s response", key)
			return nil
		}
	}
}

type fixedGenerator int

func (f fixedGenerator) Intn(n int) int {
	return int(f) % n
}
