package texasholdem

import (
	"fmt"
	"pokerrooms-server/pkg/playable"
	"pokerrooms-server/pkg/playable/poker/action"
)

// ApplyAction performs a betting action for a seat
// A rejected action leaves the room untouched. Seats are not required to wait their turn.
func (g *Game) ApplyAction(seatID string, a action.Action, amount int) error {
	seat, err := g.Seat(seatID)
	if err != nil {
		return err
	}

	if seat.folded {
		return ErrAlreadyFolded
	}

	if !g.phase.IsBettingRound() {
		return ErrInvalidPhase
	}

	if err := g.validateAction(seat, a, amount); err != nil {
		return err
	}

	g.executeAction(seat, a, amount)
	g.advance()

	return nil
}

// amountToCall is what the seat owes to match the current bet
func (g *Game) amountToCall(seat *Seat) int {
	owed := g.currentBet - seat.bet
	if owed < 0 {
		return 0
	}

	return owed
}

func (g *Game) validateAction(seat *Seat, a action.Action, amount int) error {
	if !a.IsPlayerAction() {
		return ErrInvalidAction
	}

	switch a {
	case action.Fold:
		return nil
	case action.Check:
		if g.currentBet > seat.bet {
			return ErrCannotCheck
		}

		return nil
	case action.Call:
		if g.amountToCall(seat) > seat.chips {
			return ErrInsufficientChips
		}

		return nil
	case action.Bet, action.Raise:
		if amount <= 0 {
			return ErrNonPositiveAmount
		}

		if amount > seat.chips {
			return ErrInsufficientChips
		}

		if a == action.Raise && g.currentBet == 0 {
			return ErrRaiseWithoutBet
		}

		return nil
	}

	return ErrInvalidAction
}

func (g *Game) executeAction(seat *Seat, a action.Action, amount int) {
	logAmount := 0

	switch a {
	case action.Fold:
		seat.folded = true
		seat.result = resultFolded
	case action.Call:
		logAmount = seat.moveToPot(g.amountToCall(seat))
		g.pot += logAmount
	case action.Bet:
		g.pot += seat.moveToPot(amount)
		if seat.bet > g.currentBet {
			g.currentBet = seat.bet
		}

		logAmount = amount
	case action.Raise:
		g.pot += seat.moveToPot(amount)
		g.currentBet = seat.bet
		logAmount = seat.bet
	}

	seat.lastAction = a
	g.message = fmt.Sprintf("%s %s", seat.Name, a.LogMessage(logAmount))
	g.sendLog(playable.SimpleLogMessageSlice(seat.ID, "%s", a.LogMessage(logAmount)))
}

// advance decides what happens after an accepted action
func (g *Game) advance() {
	if g.activeCount() <= 1 {
		g.showdown()
		return
	}

	if g.isBettingComplete() {
		g.advancePhase()
		return
	}

	g.nextTurn()
	g.armTurn()
}

// isBettingComplete returns true once every seat still in the hand has acted and is not behind the current bet
// A raise can lower the current bet, so a seat that has put in more than it still counts as matched.
func (g *Game) isBettingComplete() bool {
	active := g.activeSeats()
	if len(active) <= 1 {
		return true
	}

	for _, seat := range active {
		if seat.lastAction == action.None || seat.bet < g.currentBet {
			return false
		}
	}

	return true
}

// nextTurn moves the clock to the next seat that can act
// If no seat qualifies, the pointer is left alone.
func (g *Game) nextTurn() {
	n := len(g.seats)
	for i := 1; i <= n; i++ {
		index := (g.activeSeat + i) % n
		if g.seats[index].canAct() {
			g.activeSeat = index
			return
		}
	}
}

// firstToActFrom returns the first seat that can act, starting with start
func (g *Game) firstToActFrom(start int) int {
	n := len(g.seats)
	for i := 0; i < n; i++ {
		index := (start + i) % n
		if g.seats[index].canAct() {
			return index
		}
	}

	return g.activeSeat
}
