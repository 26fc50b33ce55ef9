package texasholdem

import (
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"pokerrooms-server/pkg/deck"
	"pokerrooms-server/pkg/playable/poker/action"
	"testing"
	"time"
)

func TestNewGame(t *testing.T) {
	a := assert.New(t)
	sched := &manualScheduler{}

	opts := DefaultOptions()
	opts.MaxSeats = 1
	g, err := NewGame(logrus.StandardLogger(), sched, opts)
	a.EqualError(err, "max seats must be between 2 and 10")
	a.Nil(g)

	opts = DefaultOptions()
	opts.StartingChips = 0
	_, err = NewGame(logrus.StandardLogger(), sched, opts)
	a.EqualError(err, "starting chips must be greater than zero")

	_, err = NewGame(logrus.StandardLogger(), nil, DefaultOptions())
	a.EqualError(err, "a scheduler is required")

	g, err = NewGame(logrus.StandardLogger(), sched, DefaultOptions())
	a.NoError(err)
	a.Equal(PhaseWaiting, g.Phase())
	a.Equal(msgWaiting, g.Message())
	a.Equal(0, g.SeatCount())
	a.Equal(6, g.MaxSeats())
	a.Nil(g.ActiveSeat())
}

func TestGame_AddSeat(t *testing.T) {
	a := assert.New(t)
	g, sched := setupGame(t, "alice")

	a.Equal(PhaseWaiting, g.Phase())
	a.Equal(0, g.HandNumber())

	_, err := g.AddSeat("alice", "Alice again", false)
	a.Equal(ErrSeatTaken, err)

	bob, err := g.AddSeat("bob", "bob", false)
	a.NoError(err)
	a.Equal(1, bob.Index())

	a.Equal(PhasePreFlop, g.Phase(), "second seat starts a hand")
	a.Equal(1, g.HandNumber())
	a.Equal(msgNewHand, g.Message())
	a.Equal(0, g.activeSeat)
	a.Equal(48, g.deck.CardsLeft())
	a.False(sched.armed(TimerBotAction), "a human is on the clock")

	for _, seat := range g.seats {
		a.Len(seat.Cards(), 2)
		a.Equal(1000, seat.Chips())
		a.False(seat.Folded())
		a.Equal(action.None, seat.LastAction())
	}

	carol, err := g.AddSeat("carol", "carol", false)
	a.NoError(err)
	a.True(carol.Folded(), "joins mid-hand and sits out")
	a.Len(carol.Cards(), 0)

	for _, id := range []string{"d", "e", "f"} {
		_, err := g.AddSeat(id, id, false)
		a.NoError(err)
	}

	_, err = g.AddSeat("g", "g", false)
	a.Equal(ErrTableFull, err)
	a.Equal(6, g.SeatCount())
}

func TestGame_HandPlaysToShowdown(t *testing.T) {
	a := assert.New(t)
	g, sched := setupGame(t, "alice", "bob")
	stackHand(g, "14h,14d,5s,9h,10c", "14s,14c", "2d,7c")

	a.NoError(g.ApplyAction("alice", action.Bet, 100))
	a.Equal("alice bet $100", g.Message())
	a.Equal(1, g.activeSeat)
	a.Equal(100, g.CurrentBet())

	a.NoError(g.ApplyAction("bob", action.Call, 0))
	a.Equal(PhaseFlop, g.Phase())
	a.Equal(msgFlop, g.Message())
	a.Len(g.community, 3)
	a.Equal(200, g.Pot())
	a.Equal(0, g.CurrentBet())
	a.Equal(0, g.activeSeat)
	for _, seat := range g.seats {
		a.Equal(0, seat.Bet())
		a.Equal(action.None, seat.LastAction())
	}

	a.NoError(g.ApplyAction("alice", action.Check, 0))
	a.NoError(g.ApplyAction("bob", action.Check, 0))
	a.Equal(PhaseTurn, g.Phase())
	a.Equal(msgTurn, g.Message())
	a.Len(g.community, 4)

	a.NoError(g.ApplyAction("alice", action.Check, 0))
	a.NoError(g.ApplyAction("bob", action.Check, 0))
	a.Equal(PhaseRiver, g.Phase())
	a.Equal(msgRiver, g.Message())
	a.Len(g.community, 5)
	a.Equal(2000, totalChips(g))

	a.NoError(g.ApplyAction("alice", action.Check, 0))
	a.NoError(g.ApplyAction("bob", action.Check, 0))
	a.Equal(PhaseShowdown, g.Phase())
	a.True(g.revealAll)
	a.Equal("alice wins with Four of a Kind (Ace high)! (+$200)", g.Message())
	a.Equal("alice", g.winner)
	a.Equal(0, g.Pot())
	a.Equal(1100, g.seats[0].Chips())
	a.Equal(900, g.seats[1].Chips())
	a.Equal(resultWon, g.seats[0].result)
	a.Equal(resultLost, g.seats[1].result)
	a.Equal(2000, totalChips(g))

	a.Equal(ErrInvalidPhase, g.ApplyAction("alice", action.Check, 0))

	a.True(sched.armed(TimerNextHand))
	a.Equal(5*time.Second, sched.delay)
	a.True(sched.fire())
	a.Equal(PhasePreFlop, g.Phase())
	a.Equal(2, g.HandNumber())
	a.False(g.revealAll)
	a.Equal(resultPending, g.seats[0].result)
}

func TestGame_ApplyAction_Validation(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "alice")

	a.Equal(ErrInvalidPhase, g.ApplyAction("alice", action.Check, 0))
	a.Equal(ErrSeatNotFound, g.ApplyAction("nobody", action.Check, 0))

	_, err := g.AddSeat("bob", "bob", false)
	a.NoError(err)

	a.Equal(ErrNonPositiveAmount, g.ApplyAction("alice", action.Bet, 0))
	a.Equal(ErrNonPositiveAmount, g.ApplyAction("alice", action.Raise, -5))
	a.Equal(ErrInsufficientChips, g.ApplyAction("alice", action.Bet, 1001))
	a.Equal(ErrInvalidAction, g.ApplyAction("alice", action.Disconnect, 0))

	a.NoError(g.ApplyAction("alice", action.Bet, 1000))
	a.Equal(ErrCannotCheck, g.ApplyAction("bob", action.Check, 0))

	g.seats[1].chips = 999
	a.Equal(ErrInsufficientChips, g.ApplyAction("bob", action.Call, 0))

	a.NoError(g.ApplyAction("bob", action.Fold, 0))
	a.Equal(ErrInvalidPhase, g.ApplyAction("alice", action.Check, 0), "hand is over")

	g.StartNewHand()
	a.NoError(g.ApplyAction("alice", action.Fold, 0))
	a.Equal(ErrAlreadyFolded, g.ApplyAction("alice", action.Fold, 0))
}

func TestGame_ApplyAction_FoldedSeat(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "alice", "bob", "carol")

	a.NoError(g.ApplyAction("alice", action.Fold, 0))
	a.Equal("alice folded", g.Message())
	a.Equal(PhasePreFlop, g.Phase())
	a.Equal(ErrAlreadyFolded, g.ApplyAction("alice", action.Check, 0))
}

func TestGame_RaiseWithoutBet(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "alice", "bob")

	before := *g.seats[0]
	pot, currentBet, active, message := g.pot, g.currentBet, g.activeSeat, g.message

	a.Equal(ErrRaiseWithoutBet, g.ApplyAction("alice", action.Raise, 50))

	a.Equal(before, *g.seats[0])
	a.Equal(pot, g.pot)
	a.Equal(currentBet, g.currentBet)
	a.Equal(active, g.activeSeat)
	a.Equal(message, g.message)
}

func TestGame_Raise(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "alice", "bob")

	a.NoError(g.ApplyAction("alice", action.Bet, 50))
	a.NoError(g.ApplyAction("bob", action.Raise, 150))
	a.Equal("bob raised to $150", g.Message())
	a.Equal(150, g.CurrentBet())
	a.Equal(200, g.Pot())
	a.Equal(0, g.activeSeat, "alice owes $100")

	a.NoError(g.ApplyAction("alice", action.Call, 0))
	a.Equal("alice called $100", g.Message())
	a.Equal(PhaseFlop, g.Phase())
	a.Equal(300, g.Pot())
	a.Equal(850, g.seats[0].Chips())
	a.Equal(850, g.seats[1].Chips())
}

func TestGame_Raise_LowersCurrentBet(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "alice", "bob")

	a.NoError(g.ApplyAction("alice", action.Bet, 100))
	a.NoError(g.ApplyAction("bob", action.Raise, 10))

	// alice is already past the $10 bet, nobody is behind
	a.Equal(PhaseFlop, g.Phase())
	a.Equal(110, g.Pot())
	a.Equal(0, g.CurrentBet())
	a.Equal(2000, totalChips(g))
}

func TestGame_Raise_LowersCurrentBet_WaitsForUnactedSeat(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "alice", "bob", "carol")

	a.NoError(g.ApplyAction("alice", action.Bet, 100))
	a.NoError(g.ApplyAction("bob", action.Raise, 10))
	a.Equal(PhasePreFlop, g.Phase(), "carol has not acted")
	a.Equal(10, g.CurrentBet())

	a.Equal(ErrCannotCheck, g.ApplyAction("carol", action.Check, 0))
	a.NoError(g.ApplyAction("carol", action.Call, 0))
	a.Equal(PhaseFlop, g.Phase())
	a.Equal(120, g.Pot())

	a.NoError(g.ApplyAction("alice", action.Check, 0))
	a.NoError(g.ApplyAction("bob", action.Check, 0))
	a.NoError(g.ApplyAction("carol", action.Check, 0))
	a.Equal(PhaseTurn, g.Phase())
}

func TestGame_BotShortStackRaise(t *testing.T) {
	a := assert.New(t)
	g, sched := setupGame(t, "alice")

	_, err := g.AddSeat("bot-1", "Bot 1", true)
	a.NoError(err)
	bot := g.seats[1]
	bot.chips = 50
	stackHand(g, "14h,9d,9s,3c,5h", "2d,7c", "14s,14c")

	a.NoError(g.ApplyAction("alice", action.Check, 0))
	a.True(sched.fire())
	a.Equal(PhaseFlop, g.Phase())

	// the bot flops a full house and raises all it has, which is less than the bet
	a.NoError(g.ApplyAction("alice", action.Bet, 100))
	a.True(sched.armed(TimerBotAction))
	a.True(sched.fire())
	a.Equal(0, bot.Chips())
	a.Equal(150, g.Pot())
	a.Equal(PhaseTurn, g.Phase())

	for _, phase := range []Phase{PhaseRiver, PhaseShowdown} {
		a.NoError(g.ApplyAction("alice", action.Check, 0))
		a.True(sched.armed(TimerBotAction))
		a.True(sched.fire())
		a.Equal(phase, g.Phase())
	}

	a.Equal(150, bot.Chips())
	a.Equal(900, g.seats[0].Chips())
	a.True(sched.armed(TimerNextHand))
}

func TestGame_FoldToOne(t *testing.T) {
	a := assert.New(t)
	g, sched := setupGame(t, "alice", "bob")

	a.NoError(g.ApplyAction("alice", action.Bet, 50))
	a.NoError(g.ApplyAction("bob", action.Fold, 0))

	a.Equal(PhaseShowdown, g.Phase())
	a.Equal("alice wins by elimination! (+$50)", g.Message())
	a.Equal(1000, g.seats[0].Chips())
	a.Equal(1000, g.seats[1].Chips())
	a.Equal(resultFolded, g.seats[1].result)
	a.True(sched.armed(TimerNextHand))
}

func TestGame_SplitPot(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "alice", "bob", "carol")

	// everybody plays the royal flush on the board
	stackHand(g, "", "2c,3d", "2d,3c", "2h,4c")
	g.community = deck.CardsFromString("10s,11s,12s,13s,14s")
	g.phase = PhaseRiver
	g.pot = 100

	g.showdown()

	a.Equal("Tie between alice, bob, carol! Each wins $33", g.Message())
	a.Equal("alice, bob, carol", g.winner)
	for _, seat := range g.seats {
		a.Equal(1033, seat.Chips())
		a.Equal(33, seat.winnings)
		a.Equal(resultWon, seat.result)
	}

	a.Equal(0, g.Pot())
}

func TestGame_nextTurn(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "a", "b", "c", "d")

	g.seats[1].folded = true
	g.seats[2].folded = true
	g.activeSeat = 0

	g.nextTurn()
	a.Equal(3, g.activeSeat)

	g.nextTurn()
	a.Equal(0, g.activeSeat, "wraps around")

	g.seats[3].folded = true
	g.nextTurn()
	a.Equal(0, g.activeSeat)

	g.seats[0].folded = true
	g.activeSeat = 2
	g.nextTurn()
	a.Equal(2, g.activeSeat, "nobody can act, pointer is unchanged")
}

func TestGame_RemoveSeat(t *testing.T) {
	a := assert.New(t)
	g, sched := setupGame(t, "alice", "bob", "carol")

	a.Equal(ErrSeatNotFound, g.RemoveSeat("nobody"))

	a.NoError(g.ApplyAction("alice", action.Bet, 100))
	a.Equal(1, g.activeSeat)

	a.NoError(g.RemoveSeat("bob"))
	a.Equal(2, g.SeatCount())
	a.Equal(1, g.activeSeat, "carol is on the clock")
	a.Equal("carol", g.ActiveSeat().ID)
	a.Equal(1, g.seats[1].Index())
	a.Equal(PhasePreFlop, g.Phase())

	a.NoError(g.RemoveSeat("alice"))
	a.Equal(PhaseShowdown, g.Phase())
	a.Equal("carol wins by elimination! (+$100)", g.Message())
	a.Equal(1100, g.seats[0].Chips())
	a.Equal(0, g.seats[0].Index())

	// only one seat left when the timer fires
	a.True(sched.fire())
	a.Equal(PhaseWaiting, g.Phase())
	a.Equal(msgWaiting, g.Message())
}

func TestGame_RemoveSeat_Disconnect(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "alice", "bob", "carol")

	bob, _ := g.Seat("bob")
	a.NoError(g.RemoveSeat("bob"))
	a.Equal(action.Disconnect, bob.LastAction())
	a.True(bob.Folded())

	a.NoError(g.ApplyAction("alice", action.Fold, 0))
	alice, _ := g.Seat("alice")
	a.NoError(g.RemoveSeat("alice"))
	a.Equal(action.Fold, alice.LastAction(), "already out of the hand")
}

func TestGame_RemoveSeat_CompletesRound(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "alice", "bob", "carol")

	a.NoError(g.ApplyAction("alice", action.Check, 0))
	a.NoError(g.ApplyAction("bob", action.Check, 0))

	// carol was the only seat left to act
	a.NoError(g.RemoveSeat("carol"))
	a.Equal(PhaseFlop, g.Phase())
	a.Equal(0, g.activeSeat)
}

func TestGame_StartNewHand_RefundsCommittedChips(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "alice", "bob")

	a.NoError(g.ApplyAction("alice", action.Bet, 100))
	a.NoError(g.ApplyAction("bob", action.Call, 0))
	a.NoError(g.ApplyAction("alice", action.Bet, 40))
	a.Equal(240, g.Pot())

	g.StartNewHand()
	a.Equal(2, g.HandNumber())
	a.Equal(PhasePreFlop, g.Phase())
	a.Equal(0, g.Pot())
	a.Equal(1000, g.seats[0].Chips())
	a.Equal(1000, g.seats[1].Chips())
}

func TestGame_StartNewHand_NotEnoughPlayers(t *testing.T) {
	a := assert.New(t)
	g, _ := setupGame(t, "alice")

	g.StartNewHand()
	a.Equal(PhaseWaiting, g.Phase())
	a.Equal(msgWaiting, g.Message())
	a.Equal(0, g.HandNumber())
}

func TestGame_BotTurn(t *testing.T) {
	a := assert.New(t)
	g, sched := setupGame(t, "alice")

	_, err := g.AddSeat("bot-1", "Bot 1", true)
	a.NoError(err)
	a.Equal(PhasePreFlop, g.Phase())
	stackHand(g, "14h,14d,5s,9h,10c", "14s,14c", "2d,7c")

	a.NoError(g.ApplyAction("alice", action.Check, 0))
	a.True(sched.armed(TimerBotAction))
	a.Equal(1500*time.Millisecond, sched.delay)

	a.True(sched.fire())
	a.Equal(action.None, g.seats[1].LastAction(), "round completed and was reset")
	a.Equal(PhaseFlop, g.Phase())
	a.False(sched.armed(TimerBotAction), "alice is on the clock")

	a.NoError(g.ApplyAction("alice", action.Bet, 200))
	a.True(sched.armed(TimerBotAction))
	a.True(sched.fire())

	a.True(g.seats[1].Folded(), "a pair on the board folds to a big bet")
	a.Equal(PhaseShowdown, g.Phase())
	a.Equal("alice wins by elimination! (+$200)", g.Message())
	a.True(sched.armed(TimerNextHand))
}

func TestGame_BotTurn_Stale(t *testing.T) {
	a := assert.New(t)
	g, sched := setupGame(t, "alice")

	_, err := g.AddSeat("bot-1", "Bot 1", true)
	a.NoError(err)

	a.NoError(g.ApplyAction("alice", action.Check, 0))
	a.True(sched.armed(TimerBotAction))
	pending := sched.pending

	g.StartNewHand()
	a.False(sched.armed(TimerBotAction))

	pending()
	a.Equal(action.None, g.seats[1].LastAction(), "timer from the previous hand does nothing")
	a.Equal(PhasePreFlop, g.Phase())
}

func TestGame_BotsPlayAHand(t *testing.T) {
	a := assert.New(t)
	g, sched := setupGame(t)

	_, err := g.AddSeat("bot-1", "Bot 1", true)
	a.NoError(err)
	_, err = g.AddSeat("bot-2", "Bot 2", true)
	a.NoError(err)

	for i := 0; i < 20 && g.Phase() != PhaseShowdown; i++ {
		a.True(sched.armed(TimerBotAction))
		a.True(sched.fire())
	}

	a.Equal(PhaseShowdown, g.Phase())
	a.Equal(2000, totalChips(g))
	a.True(sched.armed(TimerNextHand))
}
