package room

import (
	"pokerrooms-server/pkg/playable/poker/texasholdem"
	"time"
)

// timerScheduler is the single timer slot of a room
// Schedule and Cancel are only called from the dealer's run loop. A timer that fires
// posts its callback back into the run loop, where the generation is checked so a
// cancelled or replaced timer never touches the game.
type timerScheduler struct {
	dealer     *Dealer
	timer      *time.Timer
	generation int
}

func newTimerScheduler(d *Dealer) *timerScheduler {
	return &timerScheduler{dealer: d}
}

// Schedule arms fn to run after delay, replacing anything pending
func (s *timerScheduler) Schedule(kind texasholdem.TimerKind, delay time.Duration, fn func()) {
	s.Cancel()

	generation := s.generation
	s.dealer.logger.WithField("timer", kind.String()).WithField("delay", delay).Debug("timer armed")

	s.timer = time.AfterFunc(delay, func() {
		s.dealer.post(func() {
			if generation != s.generation {
				return
			}

			s.timer = nil
			fn()
			s.dealer.notify(stateGameEvent)
		})
	})
}

// Cancel stops the pending timer
func (s *timerScheduler) Cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	s.generation++
}
